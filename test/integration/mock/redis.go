package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce  sync.Once
	suiteRedis *Redis
)

// Redis backs the login rate limiter in feature tests.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

// NewRedis returns the suite Redis, starting miniredis on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		suiteRedis = &Redis{
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
			server: server,
		}
	})
	return suiteRedis
}

// Clear drops every rate limit counter.
func (r *Redis) Clear() {
	r.server.FlushAll()
}

