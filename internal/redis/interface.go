package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is the
// universal client so a cluster client also satisfies it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key.
const Nil = redis.Nil
