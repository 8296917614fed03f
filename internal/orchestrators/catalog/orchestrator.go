// Package catalog browses the creature provider: single lookups with the
// derived battle stats, paged listings and name search.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/creature-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/creature-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/creature-api/internal/engine/stats"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// PageSize is the number of creatures per listing page
const PageSize = 20

// Service browses the creature catalog
type Service interface {
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
	SearchCreatures(ctx context.Context, input *SearchCreaturesInput) (*SearchCreaturesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	CreatureClient pokeapi.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureClient == nil {
		vb.RequiredField("CreatureClient")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureClient pokeapi.Client
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{creatureClient: cfg.CreatureClient}, nil
}

// GetCreature looks a creature up by name, or by id when the name is numeric
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.lookup(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %q", input.Name)
	}

	extracted, err := stats.Extract(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stats of creature %q", input.Name)
	}

	return &GetCreatureOutput{
		Creature: record.Creature(),
		Stats:    extracted,
		Record:   record,
	}, nil
}

// lookup treats a purely numeric name as a provider id
func (o *orchestrator) lookup(ctx context.Context, name string) (*creature.Record, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return o.creatureClient.GetCreatureByID(ctx, id)
	}
	return o.creatureClient.GetCreature(ctx, name)
}

func (o *orchestrator) ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, errors.InvalidArgumentf("page must be at least 1, got %d", input.Page)
	}

	result, err := o.creatureClient.ListCreatures(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creatures page %d", page)
	}

	totalPages := (result.Count + PageSize - 1) / PageSize
	slog.DebugContext(ctx, "listed creatures", "page", page, "total_pages", totalPages)

	return &ListCreaturesOutput{
		Creatures:   result.Results,
		Page:        page,
		TotalPages:  totalPages,
		TotalCount:  result.Count,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}, nil
}

func (o *orchestrator) SearchCreatures(ctx context.Context, input *SearchCreaturesInput) (*SearchCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("query", input.Query, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	matches, err := o.creatureClient.SearchCreatures(ctx, input.Query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search creatures for %q", input.Query)
	}

	slog.DebugContext(ctx, "searched creatures", "query", input.Query, "matches", len(matches))

	return &SearchCreaturesOutput{Creatures: matches}, nil
}
