package creature_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

type CreatureTestSuite struct {
	suite.Suite
}

func TestCreatureSuite(t *testing.T) {
	suite.Run(t, new(CreatureTestSuite))
}

func (s *CreatureTestSuite) TestRecordIdentity() {
	record := &creature.Record{ID: 25, Name: "pikachu"}

	c := record.Creature()
	s.Equal("25", c.GetID())
	s.Equal(creature.EntityType, c.GetType())
	s.Equal("pikachu", c.Name)
}
