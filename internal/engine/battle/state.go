package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

// MaxTurns is the last round a battle may start before it is declared a draw
const MaxTurns = 100

// Combatant is the opaque identity of one side plus its display name
type Combatant struct {
	Entity core.Entity
	Name   string
}

// State is the mutable state of one simulation. It is owned by a single
// Simulate call and never shared.
type State struct {
	combatants [2]Combatant
	stats      [2]creature.Stats
	currentHP  [2]int
	log        []string
	turn       int
}

// NewState starts a battle with both sides at full health on turn 1
func NewState(a, b Combatant, statsA, statsB creature.Stats) *State {
	return &State{
		combatants: [2]Combatant{a, b},
		stats:      [2]creature.Stats{statsA, statsB},
		currentHP:  [2]int{statsA.Health, statsB.Health},
		turn:       1,
	}
}

// Combatant returns the identity on a side
func (s *State) Combatant(side Side) Combatant {
	return s.combatants[side]
}

// Stats returns the stat block of a side
func (s *State) Stats(side Side) creature.Stats {
	return s.stats[side]
}

// HP returns the current hit points of a side
func (s *State) HP(side Side) int {
	return s.currentHP[side]
}

// Turn returns the current round number
func (s *State) Turn() int {
	return s.turn
}

// ApplyDamage removes amount hit points from side, never going below zero,
// and returns the remaining hit points. Negative amounts are ignored.
func (s *State) ApplyDamage(side Side, amount int) int {
	if amount <= 0 {
		return s.currentHP[side]
	}
	hp := s.currentHP[side] - amount
	if hp < 0 {
		hp = 0
	}
	s.currentHP[side] = hp
	return hp
}

// Logf appends a line to the combat log
func (s *State) Logf(format string, args ...interface{}) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

// Log returns a copy of the combat log
func (s *State) Log() []string {
	return append([]string(nil), s.log...)
}

// NextTurn advances the round counter
func (s *State) NextTurn() {
	s.turn++
}

// IsFinished reports whether either side is out of hit points
func (s *State) IsFinished() bool {
	return s.currentHP[SideA] <= 0 || s.currentHP[SideB] <= 0
}

// IsTooLong reports whether the round limit has been passed
func (s *State) IsTooLong() bool {
	return s.turn > MaxTurns
}

// Winner returns the only side still standing. Both standing (round limit)
// or both down is a draw.
func (s *State) Winner() (Side, bool) {
	aUp := s.currentHP[SideA] > 0
	bUp := s.currentHP[SideB] > 0
	switch {
	case aUp && !bUp:
		return SideA, true
	case bUp && !aUp:
		return SideB, true
	default:
		return SideA, false
	}
}

// Result snapshots the state
func (s *State) Result() *Result {
	result := &Result{
		CreatureA: s.combatants[SideA],
		CreatureB: s.combatants[SideB],
		StatsA:    s.stats[SideA],
		StatsB:    s.stats[SideB],
		FinalHPA:  s.currentHP[SideA],
		FinalHPB:  s.currentHP[SideB],
		Log:       s.Log(),
		Turns:     s.turn - 1,
	}

	if side, ok := s.Winner(); ok {
		winner := s.combatants[side]
		result.Winner = &winner
		result.WinnerSide = side
	}

	return result
}
