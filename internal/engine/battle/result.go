package battle

import "github.com/KirkDiggler/creature-api/internal/entities/creature"

// Result is the immutable outcome of a battle
type Result struct {
	CreatureA Combatant
	CreatureB Combatant
	StatsA    creature.Stats
	StatsB    creature.Stats
	FinalHPA  int
	FinalHPB  int

	// Winner is nil for a draw; WinnerSide is only meaningful when it is set
	Winner     *Combatant
	WinnerSide Side

	Log   []string
	Turns int
}

// IsDraw reports whether the battle ended without a winner
func (r *Result) IsDraw() bool {
	return r.Winner == nil
}

// FinalHP returns the final hit points of a side
func (r *Result) FinalHP(side Side) int {
	if side == SideA {
		return r.FinalHPA
	}
	return r.FinalHPB
}
