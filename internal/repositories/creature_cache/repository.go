// Package creaturecache stores raw creature records fetched from the data
// provider so repeated battles do not refetch them.
package creaturecache

import (
	"context"
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturecachemock github.com/KirkDiggler/creature-api/internal/repositories/creature_cache Repository

// Entry is a cached record with its lifetime
type Entry struct {
	Record    *creature.Record `json:"record"`
	CachedAt  time.Time        `json:"cached_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// GetInput identifies a cached record by creature name
type GetInput struct {
	Name string
}

// GetOutput contains the cached record
type GetOutput struct {
	Entry *Entry
}

// PutInput contains a record to cache. An empty Key caches under the
// record's name; a zero TTL uses the repository default.
type PutInput struct {
	Key    string
	Record *creature.Record
	TTL    time.Duration
}

// PutOutput contains the stored entry
type PutOutput struct {
	Entry *Entry
}

// DeleteInput identifies the record to evict
type DeleteInput struct {
	Name string
}

// DeleteOutput reports whether anything was evicted
type DeleteOutput struct {
	Deleted bool
}

// Repository caches creature records by name. A miss is a NotFound error.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
