package pokeapi

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
	creaturecache "github.com/KirkDiggler/creature-api/internal/repositories/creature_cache"
)

// CachedConfig wires a provider client to the creature cache
type CachedConfig struct {
	Client Client
	Cache  creaturecache.Repository
	// TTL for cached records (optional, the cache default applies when zero)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}

	return vb.Build()
}

type cachedClient struct {
	client Client
	cache  creaturecache.Repository
	ttl    time.Duration
	group  singleflight.Group
}

// NewCachedClient returns a Client that serves records from the cache and
// collapses concurrent misses for the same name into one provider request.
// Cache failures are logged and fall through to the provider.
func NewCachedClient(cfg *CachedConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cachedClient{
		client: cfg.Client,
		cache:  cfg.Cache,
		ttl:    cfg.TTL,
	}, nil
}

func (c *cachedClient) GetCreature(ctx context.Context, name string) (*creature.Record, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	return c.fetch(ctx, normalized, func(ctx context.Context) (*creature.Record, error) {
		return c.client.GetCreature(ctx, normalized)
	})
}

func (c *cachedClient) GetCreatureByID(ctx context.Context, id int) (*creature.Record, error) {
	return c.fetch(ctx, strconv.Itoa(id), func(ctx context.Context) (*creature.Record, error) {
		return c.client.GetCreatureByID(ctx, id)
	})
}

// fetch serves key from the cache or runs load once for all concurrent
// callers. load runs detached from any single caller's cancellation; each
// caller still stops waiting when its own context is done.
func (c *cachedClient) fetch(
	ctx context.Context,
	key string,
	load func(ctx context.Context) (*creature.Record, error),
) (*creature.Record, error) {
	if record, ok := c.lookup(ctx, key); ok {
		return record, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		record, err := load(shared)
		if err != nil {
			return nil, err
		}
		c.store(shared, key, record)
		return record, nil
	})

	select {
	case <-ctx.Done():
		code := errors.CodeCanceled
		if ctx.Err() == context.DeadlineExceeded {
			code = errors.CodeDeadlineExceeded
		}
		return nil, errors.WrapWithCodef(ctx.Err(), code, "lookup of creature %q abandoned", key)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.DebugContext(ctx, "creature lookup shared", "creature", key)
		}
		return res.Val.(*creature.Record), nil
	}
}

func (c *cachedClient) ListCreatures(ctx context.Context, limit, offset int) (*creature.Page, error) {
	return c.client.ListCreatures(ctx, limit, offset)
}

func (c *cachedClient) SearchCreatures(ctx context.Context, query string) ([]*creature.Reference, error) {
	return c.client.SearchCreatures(ctx, query)
}

func (c *cachedClient) lookup(ctx context.Context, name string) (*creature.Record, bool) {
	out, err := c.cache.Get(ctx, creaturecache.GetInput{Name: name})
	switch {
	case err == nil && out.Entry != nil && out.Entry.Record != nil:
		slog.DebugContext(ctx, "creature cache hit", "creature", name)
		return out.Entry.Record, true
	case err == nil || errors.IsNotFound(err):
		slog.DebugContext(ctx, "creature cache miss", "creature", name)
	default:
		slog.WarnContext(ctx, "creature cache read failed", "creature", name, "error", err)
	}
	return nil, false
}

// store caches a record under its canonical name and, when it was requested
// by another key (an id), under that key too
func (c *cachedClient) store(ctx context.Context, key string, record *creature.Record) {
	name := NormalizeName(record.Name)
	if name == "" {
		return
	}
	c.put(ctx, name, record)
	if key != name {
		c.put(ctx, key, record)
	}
}

func (c *cachedClient) put(ctx context.Context, key string, record *creature.Record) {
	if _, err := c.cache.Put(ctx, creaturecache.PutInput{Key: key, Record: record, TTL: c.ttl}); err != nil {
		slog.WarnContext(ctx, "creature cache write failed", "creature", key, "error", err)
	}
}
