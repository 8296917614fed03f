// Package battle simulates a one-on-one fight between two creature stat
// blocks and produces the winner and a readable combat log.
package battle

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

const (
	// MinMultiplierPercent and MaxMultiplierPercent bound the random damage
	// multiplier, inclusive
	MinMultiplierPercent = 85
	MaxMultiplierPercent = 115

	multiplierSteps = MaxMultiplierPercent - MinMultiplierPercent + 1
	damageScale     = 10
)

// Config holds the dependencies for the engine
type Config struct {
	// Roller supplies every random draw: the speed tie-break and one damage
	// multiplier per attack
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Engine runs battles
type Engine struct {
	roller dice.Roller
}

// New creates a battle engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{roller: cfg.Roller}, nil
}

// SimulateInput describes the two sides of a battle
type SimulateInput struct {
	CreatureA Combatant
	CreatureB Combatant
	StatsA    creature.Stats
	StatsB    creature.Stats

	// Roller overrides the engine's roller for this battle, e.g. a seeded one
	Roller dice.Roller
}

// Simulate runs a battle to completion: a knockout, or a draw once the round
// limit is passed. The only error source is the roller.
func (e *Engine) Simulate(input *SimulateInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roller := e.roller
	if input.Roller != nil {
		roller = input.Roller
	}

	state := NewState(input.CreatureA, input.CreatureB, input.StatsA, input.StatsB)
	state.Logf("%s and %s enter the arena!", input.CreatureA.Name, input.CreatureB.Name)

	first, err := initiative(state, roller)
	if err != nil {
		return nil, err
	}
	order := [2]Side{first, first.Opponent()}

	for _, side := range order {
		if state.HP(side) <= 0 {
			state.Logf("%s has no HP and cannot fight.", state.Combatant(side).Name)
		}
	}

	for !state.IsFinished() && !state.IsTooLong() {
		state.Logf("--- Round %d ---", state.Turn())

		knockout := false
		for _, attacker := range order {
			knockout, err = act(state, roller, attacker)
			if err != nil {
				return nil, err
			}
			if knockout {
				break
			}
		}
		if knockout {
			break
		}

		state.NextTurn()
	}

	switch {
	case !state.IsFinished():
		state.Logf("The battle went on for too long and is declared a draw.")
	case state.HP(SideA) <= 0 && state.HP(SideB) <= 0:
		state.Logf("Both combatants are down. The battle is a draw.")
	}

	return state.Result(), nil
}

// Damage computes the hit points removed by one attack:
// attack / max(1, defense) * 10, scaled by multiplierPercent, rounded half
// away from zero and never below 1.
func Damage(attack, defense, multiplierPercent int) int {
	if defense < 1 {
		defense = 1
	}
	base := float64(attack) / float64(defense) * damageScale
	final := int(math.Round(base * float64(multiplierPercent) / 100))
	if final < 1 {
		return 1
	}
	return final
}

// initiative picks the side that attacks first for the whole battle. Equal
// speeds are settled by a single coin toss.
func initiative(state *State, roller dice.Roller) (Side, error) {
	a, b := state.Combatant(SideA), state.Combatant(SideB)
	speedA, speedB := state.Stats(SideA).Speed, state.Stats(SideB).Speed

	switch {
	case speedA > speedB:
		state.Logf("%s is faster (%d vs %d speed) and attacks first.", a.Name, speedA, speedB)
		return SideA, nil
	case speedB > speedA:
		state.Logf("%s is faster (%d vs %d speed) and attacks first.", b.Name, speedB, speedA)
		return SideB, nil
	}

	toss, err := roller.Roll(2)
	if err != nil {
		return SideA, errors.Wrap(err, "failed to roll initiative tie-break")
	}

	first := SideA
	if toss == 2 {
		first = SideB
	}
	state.Logf("Both have %d speed; %s wins the coin toss and attacks first.", speedA, state.Combatant(first).Name)
	return first, nil
}

// act resolves one attack by attacker and reports whether it knocked the
// defender out. A side with no hit points left does not act.
func act(state *State, roller dice.Roller, attacker Side) (bool, error) {
	if state.HP(attacker) <= 0 {
		return false, nil
	}
	defender := attacker.Opponent()

	roll, err := roller.Roll(multiplierSteps)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll damage multiplier")
	}
	percent := MinMultiplierPercent + roll - 1

	damage := Damage(state.Stats(attacker).Attack, state.Stats(defender).Defense, percent)
	remaining := state.ApplyDamage(defender, damage)

	attackerName := state.Combatant(attacker).Name
	defenderName := state.Combatant(defender).Name
	state.Logf("%s attacks %s and deals %d damage.", attackerName, defenderName, damage)
	state.Logf("%s has %d/%d HP left.", defenderName, remaining, state.Stats(defender).Health)

	if remaining > 0 {
		return false, nil
	}

	state.Logf("%s is knocked out!", defenderName)
	state.Logf("%s wins the battle!", attackerName)
	return true, nil
}
