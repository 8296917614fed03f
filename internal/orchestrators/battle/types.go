package battle

import (
	engine "github.com/KirkDiggler/creature-api/internal/engine/battle"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

// BattleInput names the two creatures to fight
type BattleInput struct {
	CreatureA string
	CreatureB string
	// Seed replays a battle deterministically when set
	Seed *uint64
}

// BattleOutput is the outcome of one battle
type BattleOutput struct {
	BattleID string
	// CreatureA and CreatureB are the resolved identities
	CreatureA *creature.Creature
	CreatureB *creature.Creature
	Result    *engine.Result
}
