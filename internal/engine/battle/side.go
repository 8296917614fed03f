package battle

// Side selects one of the two combatant slots
type Side int

// The two slots of a battle
const (
	SideA Side = iota
	SideB
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// String returns "A" or "B"
func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}
