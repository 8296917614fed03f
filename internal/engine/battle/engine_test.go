package battle_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-api/internal/engine/battle"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/roller"
)

// neutralRoll makes every damage multiplier exactly 100 %
const neutralRoll = 16

type EngineTestSuite struct {
	suite.Suite
	fast battle.Combatant
	slow battle.Combatant
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.fast = combatant(25, "pikachu")
	s.slow = combatant(79, "slowpoke")
}

func combatant(id int, name string) battle.Combatant {
	return battle.Combatant{Entity: &creature.Creature{ID: id, Name: name}, Name: name}
}

func (s *EngineTestSuite) newEngine(r *roller.Scripted) *battle.Engine {
	engine, err := battle.New(&battle.Config{Roller: r})
	s.Require().NoError(err)
	return engine
}

// Fast striker against a slow wall: A={50,50,50,100}, B={50,10,100,10}
func (s *EngineTestSuite) scenarioInput() *battle.SimulateInput {
	return &battle.SimulateInput{
		CreatureA: s.fast,
		CreatureB: s.slow,
		StatsA:    creature.Stats{Health: 50, Attack: 50, Defense: 50, Speed: 100},
		StatsB:    creature.Stats{Health: 50, Attack: 10, Defense: 100, Speed: 10},
	}
}

func (s *EngineTestSuite) TestNewRequiresRoller() {
	_, err := battle.New(&battle.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roller: is required")

	_, err = battle.New(nil)
	s.Error(err)
}

func (s *EngineTestSuite) TestSimulateNilInput() {
	_, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestScenarioWithNeutralMultiplier() {
	result, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(s.scenarioInput())
	s.Require().NoError(err)

	s.Require().NotNil(result.Winner)
	s.Equal("pikachu", result.Winner.Name)
	s.Equal(battle.SideA, result.WinnerSide)
	s.False(result.IsDraw())
	s.Equal(32, result.FinalHPA)
	s.Equal(0, result.FinalHPB)
	s.Equal(9, result.Turns)

	s.Require().Len(result.Log, 52)
	s.Equal("pikachu and slowpoke enter the arena!", result.Log[0])
	s.Equal("pikachu is faster (100 vs 10 speed) and attacks first.", result.Log[1])
	s.Equal("--- Round 1 ---", result.Log[2])
	s.Equal("pikachu attacks slowpoke and deals 5 damage.", result.Log[3])
	s.Equal("slowpoke has 45/50 HP left.", result.Log[4])
	s.Equal("slowpoke attacks pikachu and deals 2 damage.", result.Log[5])
	s.Equal("pikachu has 48/50 HP left.", result.Log[6])
	s.Equal("--- Round 10 ---", result.Log[47])
	s.Equal("slowpoke has 0/50 HP left.", result.Log[49])
	s.Equal("slowpoke is knocked out!", result.Log[50])
	s.Equal("pikachu wins the battle!", result.Log[51])
}

func (s *EngineTestSuite) TestScenarioFasterSideWinsAcrossSeeds() {
	engine := s.newEngine(roller.NewScripted(neutralRoll))

	for seed := uint64(1); seed <= 100; seed++ {
		input := s.scenarioInput()
		input.Roller = roller.NewSeeded(seed)

		result, err := engine.Simulate(input)
		s.Require().NoError(err)

		s.Equal(s.fast.Name+" is faster (100 vs 10 speed) and attacks first.", result.Log[1])
		s.Require().NotNil(result.Winner, "seed %d", seed)
		s.Equal(battle.SideA, result.WinnerSide, "seed %d", seed)
		s.Less(result.Turns, 20, "seed %d", seed)
		s.Equal(0, result.FinalHPB)
		s.Greater(result.FinalHPA, 0)
	}
}

func (s *EngineTestSuite) TestFasterSideBActsFirst() {
	input := &battle.SimulateInput{
		CreatureA: s.slow,
		CreatureB: s.fast,
		StatsA:    creature.Stats{Health: 60, Attack: 20, Defense: 20, Speed: 15},
		StatsB:    creature.Stats{Health: 60, Attack: 20, Defense: 20, Speed: 90},
	}

	result, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(input)
	s.Require().NoError(err)

	s.Equal("pikachu is faster (90 vs 15 speed) and attacks first.", result.Log[1])
	s.Equal("pikachu attacks slowpoke and deals 10 damage.", result.Log[3])

	// Same damage both ways, so whoever strikes first lands the last blow
	s.Require().NotNil(result.Winner)
	s.Equal(battle.SideB, result.WinnerSide)
	s.Equal(5, result.Turns)
	s.Equal(10, result.FinalHPB)
}

func (s *EngineTestSuite) TestKnockoutEndsRoundImmediately() {
	input := &battle.SimulateInput{
		CreatureA: s.fast,
		CreatureB: s.slow,
		StatsA:    creature.Stats{Health: 30, Attack: 200, Defense: 10, Speed: 50},
		StatsB:    creature.Stats{Health: 30, Attack: 200, Defense: 10, Speed: 40},
	}

	result, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(input)
	s.Require().NoError(err)

	s.Equal(30, result.FinalHPA)
	s.Equal(0, result.FinalHPB)
	s.Equal(0, result.Turns)
	for _, line := range result.Log {
		s.NotContains(line, "slowpoke attacks")
	}
	s.Equal("pikachu wins the battle!", result.Log[len(result.Log)-1])
}

func (s *EngineTestSuite) TestTieBreakDrawnOnce() {
	r := roller.NewScripted(2, neutralRoll)
	input := &battle.SimulateInput{
		CreatureA: combatant(16, "pidgey"),
		CreatureB: combatant(19, "rattata"),
		StatsA:    creature.Stats{Health: 40, Attack: 45, Defense: 40, Speed: 56},
		StatsB:    creature.Stats{Health: 40, Attack: 45, Defense: 40, Speed: 56},
	}

	result, err := s.newEngine(r).Simulate(input)
	s.Require().NoError(err)

	s.Equal("Both have 56 speed; rattata wins the coin toss and attacks first.", result.Log[1])
	s.Equal("rattata attacks pidgey", result.Log[3][:len("rattata attacks pidgey")])

	tosses := 0
	for _, size := range r.Calls() {
		if size == 2 {
			tosses++
		} else {
			s.Equal(31, size)
		}
	}
	s.Equal(1, tosses)
}

func (s *EngineTestSuite) TestTieBreakFirstSide() {
	input := &battle.SimulateInput{
		CreatureA: combatant(16, "pidgey"),
		CreatureB: combatant(19, "rattata"),
		StatsA:    creature.Stats{Health: 40, Attack: 45, Defense: 40, Speed: 56},
		StatsB:    creature.Stats{Health: 40, Attack: 45, Defense: 40, Speed: 56},
	}

	result, err := s.newEngine(roller.NewScripted(1, neutralRoll)).Simulate(input)
	s.Require().NoError(err)
	s.Equal("Both have 56 speed; pidgey wins the coin toss and attacks first.", result.Log[1])
}

func (s *EngineTestSuite) TestIdenticalStatsHPStrictlyDecreases() {
	input := &battle.SimulateInput{
		CreatureA: combatant(16, "pidgey"),
		CreatureB: combatant(19, "rattata"),
		StatsA:    creature.Stats{Health: 90, Attack: 30, Defense: 60, Speed: 40},
		StatsB:    creature.Stats{Health: 90, Attack: 30, Defense: 60, Speed: 40},
		Roller:    roller.NewSeeded(2024),
	}

	result, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(input)
	s.Require().NoError(err)

	for _, name := range []string{"pidgey", "rattata"} {
		last := 91
		hits := 0
		for _, line := range result.Log {
			prefix := name + " has "
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			var hp, maxHP int
			_, err := fmt.Sscanf(strings.TrimPrefix(line, prefix), "%d/%d", &hp, &maxHP)
			s.Require().NoError(err)
			s.Less(hp, last)
			s.Equal(90, maxHP)
			last = hp
			hits++
		}
		s.Greater(hits, 0)
	}
}

func (s *EngineTestSuite) TestRoundLimitForcesDraw() {
	input := &battle.SimulateInput{
		CreatureA: s.fast,
		CreatureB: s.slow,
		StatsA:    creature.Stats{Health: 100000, Attack: 1, Defense: 1000, Speed: 5},
		StatsB:    creature.Stats{Health: 100000, Attack: 1, Defense: 1000, Speed: 4},
	}

	result, err := s.newEngine(roller.NewScripted(neutralRoll)).Simulate(input)
	s.Require().NoError(err)

	s.True(result.IsDraw())
	s.Nil(result.Winner)
	s.Equal(battle.MaxTurns, result.Turns)
	s.Equal(99900, result.FinalHPA)
	s.Equal(99900, result.FinalHPB)
	s.Len(result.Log, 2+battle.MaxTurns*5+1)
	s.Equal("The battle went on for too long and is declared a draw.", result.Log[len(result.Log)-1])
}

func (s *EngineTestSuite) TestZeroHealthSideLoses() {
	input := &battle.SimulateInput{
		CreatureA: s.fast,
		CreatureB: s.slow,
		StatsA:    creature.Stats{Health: 0, Attack: 10, Defense: 10, Speed: 10},
		StatsB:    creature.Stats{Health: 10, Attack: 10, Defense: 10, Speed: 10},
	}

	result, err := s.newEngine(roller.NewScripted(1)).Simulate(input)
	s.Require().NoError(err)

	s.Require().NotNil(result.Winner)
	s.Equal("slowpoke", result.Winner.Name)
	s.Equal(0, result.Turns)
	s.Contains(result.Log, "pikachu has no HP and cannot fight.")
}

func (s *EngineTestSuite) TestBothZeroHealthIsDraw() {
	input := &battle.SimulateInput{
		CreatureA: s.fast,
		CreatureB: s.slow,
		StatsA:    creature.Stats{Speed: 2},
		StatsB:    creature.Stats{Speed: 1},
	}

	result, err := s.newEngine(roller.NewScripted(1)).Simulate(input)
	s.Require().NoError(err)

	s.True(result.IsDraw())
	s.Equal("Both combatants are down. The battle is a draw.", result.Log[len(result.Log)-1])
}

func (s *EngineTestSuite) TestRollerErrorAbortsBattle() {
	result, err := s.newEngine(roller.NewScripted()).Simulate(s.scenarioInput())

	s.Nil(result)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to roll damage multiplier")
}

func (s *EngineTestSuite) TestSeededBattleIsReproducible() {
	engine := s.newEngine(roller.NewScripted(neutralRoll))

	run := func() *battle.Result {
		input := &battle.SimulateInput{
			CreatureA: combatant(1, "bulbasaur"),
			CreatureB: combatant(4, "charmander"),
			StatsA:    creature.Stats{Health: 45, Attack: 49, Defense: 49, Speed: 45},
			StatsB:    creature.Stats{Health: 39, Attack: 52, Defense: 43, Speed: 65},
			Roller:    roller.NewSeeded(99),
		}
		result, err := engine.Simulate(input)
		s.Require().NoError(err)
		return result
	}

	s.Equal(run(), run())
}

func (s *EngineTestSuite) TestOutcomeInvariants() {
	engine := s.newEngine(roller.NewScripted(neutralRoll))
	statRNG := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 300; i++ {
		statsA := randomStats(statRNG)
		statsB := randomStats(statRNG)
		input := &battle.SimulateInput{
			CreatureA: s.fast,
			CreatureB: s.slow,
			StatsA:    statsA,
			StatsB:    statsB,
			Roller:    roller.NewSeeded(uint64(i)),
		}

		result, err := engine.Simulate(input)
		s.Require().NoError(err)

		s.GreaterOrEqual(result.FinalHPA, 0)
		s.LessOrEqual(result.FinalHPA, statsA.Health)
		s.GreaterOrEqual(result.FinalHPB, 0)
		s.LessOrEqual(result.FinalHPB, statsB.Health)
		s.LessOrEqual(result.Turns, battle.MaxTurns)

		if result.Winner != nil {
			loser := result.WinnerSide.Opponent()
			s.Greater(result.FinalHP(result.WinnerSide), 0)
			s.Equal(0, result.FinalHP(loser))
			continue
		}

		// Only the round limit can end a battle between two healthy sides
		s.Equal(battle.MaxTurns, result.Turns)
		s.Greater(result.FinalHPA, 0)
		s.Greater(result.FinalHPB, 0)
	}
}

func randomStats(r *rand.Rand) creature.Stats {
	return creature.Stats{
		Health:  1 + r.IntN(255),
		Attack:  1 + r.IntN(200),
		Defense: r.IntN(250),
		Speed:   r.IntN(200),
	}
}

func (s *EngineTestSuite) TestDamage() {
	testCases := []struct {
		name    string
		attack  int
		defense int
		percent int
		want    int
	}{
		{"even matchup", 50, 50, 100, 10},
		{"low multiplier", 50, 50, 85, 9},
		{"high multiplier", 50, 50, 115, 12},
		{"half rounds up", 50, 100, 90, 5},
		{"rounds down", 50, 100, 85, 4},
		{"zero defense counts as one", 100, 0, 100, 1000},
		{"never below one", 1, 1000, 85, 1},
		{"zero attack still hits", 0, 50, 100, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, battle.Damage(tc.attack, tc.defense, tc.percent))
		})
	}
}

func (s *EngineTestSuite) TestDamageWithinMultiplierBand() {
	for attack := 0; attack <= 200; attack += 7 {
		for defense := 0; defense <= 200; defense += 9 {
			low := battle.Damage(attack, defense, battle.MinMultiplierPercent)
			high := battle.Damage(attack, defense, battle.MaxMultiplierPercent)
			s.GreaterOrEqual(low, 1)
			s.LessOrEqual(low, high)
		}
	}
}
