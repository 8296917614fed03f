// Package battle resolves two creature names through the data provider and
// fights them with the battle engine
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/creature-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/creature-api/internal/clients/pokeapi"
	engine "github.com/KirkDiggler/creature-api/internal/engine/battle"
	"github.com/KirkDiggler/creature-api/internal/engine/stats"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/idgen"
	"github.com/KirkDiggler/creature-api/internal/pkg/roller"
)

// Service runs battles between named creatures
type Service interface {
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	CreatureClient pokeapi.Client
	Engine         *engine.Engine
	IDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureClient == nil {
		vb.RequiredField("CreatureClient")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureClient pokeapi.Client
	engine         *engine.Engine
	idGen          idgen.Generator
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		creatureClient: cfg.CreatureClient,
		engine:         cfg.Engine,
		idGen:          cfg.IDGenerator,
	}, nil
}

// combatant is one resolved side
type combatant struct {
	creature *creature.Creature
	stats    creature.Stats
}

// Battle looks up both creatures, derives their stat blocks and simulates the
// fight. Lookup and extraction failures abort before the battle starts.
func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creature_a", input.CreatureA, vb)
	errors.ValidateRequired("creature_b", input.CreatureB, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()
	logger := slog.With("battle_id", battleID)

	var sides [2]combatant
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range []string{input.CreatureA, input.CreatureB} {
		g.Go(func() error {
			side, err := o.resolve(gctx, name)
			if err != nil {
				return err
			}
			sides[i] = side
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WarnContext(ctx, "battle aborted",
			"creature_a", input.CreatureA,
			"creature_b", input.CreatureB,
			"error", err)
		return nil, err
	}

	simulateInput := &engine.SimulateInput{
		CreatureA: engine.Combatant{Entity: sides[0].creature, Name: sides[0].creature.Name},
		CreatureB: engine.Combatant{Entity: sides[1].creature, Name: sides[1].creature.Name},
		StatsA:    sides[0].stats,
		StatsB:    sides[1].stats,
	}
	if input.Seed != nil {
		simulateInput.Roller = roller.NewSeeded(*input.Seed)
	}

	result, err := o.engine.Simulate(simulateInput)
	if err != nil {
		return nil, errors.Wrapf(err, "battle %s failed", battleID)
	}

	winner := "draw"
	if result.Winner != nil {
		winner = result.Winner.Name
	}
	logger.InfoContext(ctx, "battle finished",
		"creature_a", sides[0].creature.Name,
		"creature_b", sides[1].creature.Name,
		"winner", winner,
		"turns", result.Turns,
		"seeded", input.Seed != nil)

	return &BattleOutput{
		BattleID:  battleID,
		CreatureA: sides[0].creature,
		CreatureB: sides[1].creature,
		Result:    result,
	}, nil
}

func (o *orchestrator) resolve(ctx context.Context, name string) (combatant, error) {
	record, err := o.creatureClient.GetCreature(ctx, name)
	if err != nil {
		return combatant{}, errors.Wrapf(err, "failed to resolve creature %q", name)
	}

	extracted, err := stats.Extract(record)
	if err != nil {
		return combatant{}, errors.Wrapf(err, "failed to read stats of creature %q", name)
	}

	return combatant{creature: record.Creature(), stats: extracted}, nil
}
