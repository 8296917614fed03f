// Package creature holds the creature types shared by the provider client,
// the stat extractor and the battle engine.
package creature

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by Creature
const EntityType = "creature"

// StatEntry is one named entry of a provider's per-creature stat list
type StatEntry struct {
	Name     string      `json:"name"`
	BaseStat json.Number `json:"base_stat"`
}

// Record is a raw creature record as supplied by the data provider.
// Stats keep the provider's order.
type Record struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Stats []StatEntry `json:"stats"`
}

// Creature returns the identity of the record
func (r *Record) Creature() *Creature {
	return &Creature{ID: r.ID, Name: r.Name}
}

// Stats is the fixed stat block a battle is fought with
type Stats struct {
	Health  int `json:"health"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Creature is the identity of a creature taking part in a battle
type Creature struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID returns the provider id as a string
func (c *Creature) GetID() string {
	return strconv.Itoa(c.ID)
}

// GetType returns the entity type for rpg-toolkit
func (c *Creature) GetType() string {
	return EntityType
}

var _ core.Entity = (*Creature)(nil)

// Reference is a listing entry pointing at a full record
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is one page of a creature listing
type Page struct {
	Count   int          `json:"count"`
	Results []*Reference `json:"results"`
}
