// Package v1alpha1 serves creature battles over gRPC. Messages are schemaless
// google.protobuf.Struct values with snake_case keys.
package v1alpha1

import (
	"context"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	engine "github.com/KirkDiggler/creature-api/internal/engine/battle"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/creature-api/internal/orchestrators/catalog"
)

// maxExactSeed is the largest seed a JSON number carries without loss
const maxExactSeed = 1 << 53

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService  battle.Service
	CatalogService catalog.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}

	return vb.Build()
}

// Handler implements BattleServiceServer
type Handler struct {
	battleService  battle.Service
	catalogService catalog.Service
}

var _ BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService:  cfg.BattleService,
		catalogService: cfg.CatalogService,
	}, nil
}

// Battle fights two named creatures.
// Request: {creature_a, creature_b, seed?}
func (h *Handler) Battle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	nameA := strings.TrimSpace(stringField(req, "creature_a"))
	nameB := strings.TrimSpace(stringField(req, "creature_b"))

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creature_a", nameA, vb)
	errors.ValidateRequired("creature_b", nameB, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.EqualFold(nameA, nameB) {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("%s cannot battle itself", nameA))
	}

	seed, err := seedField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.Battle(ctx, &battle.BattleInput{
		CreatureA: nameA,
		CreatureB: nameB,
		Seed:      seed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(battleResponse(out))
}

// GetCreature returns a creature with its battle stats.
// Request: {name}
func (h *Handler) GetCreature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := stringField(req, "name")
	if strings.TrimSpace(name) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.catalogService.GetCreature(ctx, &catalog.GetCreatureInput{Name: name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]interface{}{
		"id":    out.Creature.ID,
		"name":  out.Creature.Name,
		"stats": statsValue(out.Stats),
	})
}

// ListCreatures returns one page of the catalog.
// Request: {page?}
func (h *Handler) ListCreatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, err := intField(req, "page")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.ListCreatures(ctx, &catalog.ListCreaturesInput{Page: page})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]interface{}{
		"creatures":    referencesValue(out.Creatures),
		"page":         out.Page,
		"total_pages":  out.TotalPages,
		"total_count":  out.TotalCount,
		"has_previous": out.HasPrevious,
		"has_next":     out.HasNext,
	})
}

// SearchCreatures finds creatures by name fragment.
// Request: {query}
func (h *Handler) SearchCreatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	query := stringField(req, "query")
	if strings.TrimSpace(query) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("query is required"))
	}

	out, err := h.catalogService.SearchCreatures(ctx, &catalog.SearchCreaturesInput{Query: query})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]interface{}{
		"creatures": referencesValue(out.Creatures),
		"count":     len(out.Creatures),
	})
}

func battleResponse(out *battle.BattleOutput) map[string]interface{} {
	result := out.Result

	var winner interface{}
	if result.Winner != nil {
		winner = result.Winner.Name
	}

	log := make([]interface{}, len(result.Log))
	for i, line := range result.Log {
		log[i] = line
	}

	return map[string]interface{}{
		"battle_id":  out.BattleID,
		"creature_a": sideValue(out.CreatureA, result.StatsA, result.FinalHP(engine.SideA)),
		"creature_b": sideValue(out.CreatureB, result.StatsB, result.FinalHP(engine.SideB)),
		"winner":     winner,
		"draw":       result.IsDraw(),
		"turns":      result.Turns,
		"log":        log,
	}
}

func sideValue(c *creature.Creature, stats creature.Stats, finalHP int) map[string]interface{} {
	return map[string]interface{}{
		"id":       c.ID,
		"name":     c.Name,
		"stats":    statsValue(stats),
		"final_hp": finalHP,
	}
}

func statsValue(stats creature.Stats) map[string]interface{} {
	return map[string]interface{}{
		"health":  stats.Health,
		"attack":  stats.Attack,
		"defense": stats.Defense,
		"speed":   stats.Speed,
	}
}

func referencesValue(refs []*creature.Reference) []interface{} {
	values := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		values = append(values, map[string]interface{}{"name": ref.Name, "url": ref.URL})
	}
	return values
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return s, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

// intField reads an optional whole number. Missing and null read as zero.
func intField(req *structpb.Struct, key string) (int, error) {
	value, ok := req.GetFields()[key]
	if !ok {
		return 0, nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, errors.InvalidArgumentf("%s must be a whole number", key)
		}
		return int(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(strings.TrimSpace(kind.StringValue))
		if err != nil {
			return 0, errors.InvalidArgumentf("%s must be a whole number", key)
		}
		return n, nil
	default:
		return 0, errors.InvalidArgumentf("%s must be a whole number", key)
	}
}

// seedField reads the optional battle seed. Seeds above 2^53 must be sent as
// strings.
func seedField(req *structpb.Struct) (*uint64, error) {
	value, ok := req.GetFields()["seed"]
	if !ok {
		return nil, nil
	}

	var seed uint64
	switch kind := value.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 0 || n != math.Trunc(n) || n > maxExactSeed {
			return nil, errors.InvalidArgument("seed must be a non-negative whole number")
		}
		seed = uint64(n)
	case *structpb.Value_StringValue:
		n, err := strconv.ParseUint(strings.TrimSpace(kind.StringValue), 10, 64)
		if err != nil {
			return nil, errors.InvalidArgument("seed must be a non-negative whole number")
		}
		seed = n
	default:
		return nil, errors.InvalidArgument("seed must be a non-negative whole number")
	}
	return &seed, nil
}
