package creaturecache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/creature-api/internal/redis"
)

const (
	// Key pattern: creature:{name}
	keyPrefix = "creature:"

	// DefaultTTL is how long a record stays cached when no TTL is configured
	DefaultTTL = 24 * time.Hour

	errNameEmpty   = "creature name cannot be empty"
	errRecordNil   = "record cannot be nil"
	errRecordNoKey = "record name cannot be empty"
)

// Config holds the dependencies for the redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a creature cache backed by redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get returns the cached record for a name
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key, err := buildKey(input.Name)
	if err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature %q is not cached", input.Name)
		}
		return nil, errors.Wrap(err, "failed to read creature from redis")
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cached creature")
	}

	// Redis expiry and the clock can disagree; the clock wins
	if !r.clock.Now().Before(entry.ExpiresAt) {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			slog.WarnContext(ctx, "failed to evict expired creature", "key", key, "error", err)
		}
		return nil, errors.NotFoundf("cached creature %q has expired", input.Name)
	}

	return &GetOutput{Entry: &entry}, nil
}

// Put caches a record under its name
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	name := input.Key
	if strings.TrimSpace(name) == "" {
		name = input.Record.Name
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument(errRecordNoKey)
	}

	key, err := buildKey(name)
	if err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	entry := &Entry{
		Record:    input.Record,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal creature")
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store creature in redis")
	}

	return &PutOutput{Entry: entry}, nil
}

// Delete evicts a cached record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key, err := buildKey(input.Name)
	if err != nil {
		return nil, err
	}

	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete creature from redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

// buildKey normalizes a creature name the same way the provider does
func buildKey(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", errors.InvalidArgument(errNameEmpty)
	}
	return keyPrefix + normalized, nil
}
