package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the surface repositories program against. It matches
// redis.UniversalClient so real clients and miniredis-backed test
// clients are interchangeable.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
