// Package roller provides dice.Roller implementations for reproducible battles
package roller

import (
	"fmt"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Seeded is a deterministic dice.Roller. Two Seeded rollers built from the
// same seed produce the same sequence of rolls. Not safe for concurrent use.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a roller whose sequence is fixed by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Scripted replays a fixed list of results, cycling when exhausted.
// Results larger than the requested size are clamped to it.
type Scripted struct {
	results []int
	next    int
	calls   []int
}

// NewScripted creates a roller that returns results in order
func NewScripted(results ...int) *Scripted {
	return &Scripted{results: results}
}

// Roll returns the next scripted result
func (s *Scripted) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	if len(s.results) == 0 {
		return 0, fmt.Errorf("no scripted results")
	}
	s.calls = append(s.calls, size)
	v := s.results[s.next%len(s.results)]
	s.next++
	if v > size {
		v = size
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// RollN returns the next count scripted results
func (s *Scripted) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Calls returns the die sizes requested so far
func (s *Scripted) Calls() []int {
	return append([]int(nil), s.calls...)
}

var (
	_ dice.Roller = (*Seeded)(nil)
	_ dice.Roller = (*Scripted)(nil)
)
