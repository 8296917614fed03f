package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface used by the creature cache. Both the single
// instance and the cluster client satisfy it.
type Client interface {
	redis.UniversalClient
}
