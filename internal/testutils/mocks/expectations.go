// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/creature-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

// ExpectCreatureLookups makes the provider serve each record by name, times
// times each
func ExpectCreatureLookups(mockClient *pokeapimock.MockClient, times int, records ...*creature.Record) {
	for _, record := range records {
		mockClient.EXPECT().
			GetCreature(gomock.Any(), record.Name).
			Return(record, nil).
			Times(times)
	}
}
