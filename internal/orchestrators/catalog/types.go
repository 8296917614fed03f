package catalog

import "github.com/KirkDiggler/creature-api/internal/entities/creature"

// GetCreatureInput names a creature
type GetCreatureInput struct {
	Name string
}

// GetCreatureOutput is a creature with its battle stat block
type GetCreatureOutput struct {
	Creature *creature.Creature
	Stats    creature.Stats
	Record   *creature.Record
}

// ListCreaturesInput selects a 1-based page
type ListCreaturesInput struct {
	Page int
}

// ListCreaturesOutput is one page of the catalog
type ListCreaturesOutput struct {
	Creatures   []*creature.Reference
	Page        int
	TotalPages  int
	TotalCount  int
	HasPrevious bool
	HasNext     bool
}

// SearchCreaturesInput is a case-insensitive name fragment
type SearchCreaturesInput struct {
	Query string
}

// SearchCreaturesOutput lists the matching creatures
type SearchCreaturesOutput struct {
	Creatures []*creature.Reference
}
