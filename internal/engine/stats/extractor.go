// Package stats derives battle stat blocks from raw provider records.
package stats

import (
	"strconv"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// Positions of the battle stats in the provider's stat list
const (
	IndexHealth  = 0
	IndexAttack  = 1
	IndexDefense = 2
	IndexSpeed   = 5

	// MinEntries is the shortest stat list a battle can be fought with
	MinEntries = IndexSpeed + 1
)

// Extract reads health, attack, defense and speed from entries 0, 1, 2 and 5
// of the record's stat list. A short list or a non-integer entry is a
// DataFormat error; missing entries never default to zero.
func Extract(record *creature.Record) (creature.Stats, error) {
	if record == nil {
		return creature.Stats{}, errors.DataFormat("creature record is required")
	}

	if len(record.Stats) < MinEntries {
		return creature.Stats{}, errors.DataFormatf("creature %q has %d stat entries, need at least %d",
			record.Name, len(record.Stats), MinEntries).
			WithMeta("creature", record.Name).
			WithMeta("stat_count", len(record.Stats))
	}

	var err error
	var out creature.Stats
	if out.Health, err = readEntry(record, IndexHealth); err != nil {
		return creature.Stats{}, err
	}
	if out.Attack, err = readEntry(record, IndexAttack); err != nil {
		return creature.Stats{}, err
	}
	if out.Defense, err = readEntry(record, IndexDefense); err != nil {
		return creature.Stats{}, err
	}
	if out.Speed, err = readEntry(record, IndexSpeed); err != nil {
		return creature.Stats{}, err
	}

	return out, nil
}

func readEntry(record *creature.Record, index int) (int, error) {
	entry := record.Stats[index]

	value, err := strconv.Atoi(entry.BaseStat.String())
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeDataFormat,
			"creature %q stat %d (%s) is not an integer: %q", record.Name, index, entry.Name, entry.BaseStat).
			WithMeta("creature", record.Name).
			WithMeta("index", index).
			WithMeta("stat", entry.Name)
	}
	if value < 0 {
		return 0, errors.DataFormatf("creature %q stat %d (%s) is negative: %d", record.Name, index, entry.Name, value).
			WithMeta("creature", record.Name).
			WithMeta("index", index).
			WithMeta("stat", entry.Name)
	}

	return value, nil
}
