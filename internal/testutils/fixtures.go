package testutils

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

// statNames is the provider's stat order
var statNames = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// NewRecord builds a provider record from the six base stats in provider
// order: hp, attack, defense, special-attack, special-defense, speed
func NewRecord(id int, name string, baseStats ...int) *creature.Record {
	record := &creature.Record{ID: id, Name: name}
	for i, value := range baseStats {
		entryName := "extra"
		if i < len(statNames) {
			entryName = statNames[i]
		}
		record.Stats = append(record.Stats, creature.StatEntry{
			Name:     entryName,
			BaseStat: json.Number(strconv.Itoa(value)),
		})
	}
	return record
}

// Pikachu returns the pikachu record with its real base stats
func Pikachu() *creature.Record {
	return NewRecord(25, "pikachu", 35, 55, 40, 50, 50, 90)
}

// Bulbasaur returns the bulbasaur record with its real base stats
func Bulbasaur() *creature.Record {
	return NewRecord(1, "bulbasaur", 45, 49, 49, 65, 65, 45)
}

// Charmander returns the charmander record with its real base stats
func Charmander() *creature.Record {
	return NewRecord(4, "charmander", 39, 52, 43, 60, 50, 65)
}
