package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

// RedisClient wraps the client so the injector closes it on shutdown.
type RedisClient struct {
	*redis.Client
}

func (c *RedisClient) Shutdown() error {
	return c.Close()
}

// RedisPackage provides the Redis client used by the analytics stream and
// the health check. It is only resolved when a Redis address is configured.
func RedisPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*RedisClient, error) {
		opts := do.MustInvoke[*Options](i)

		return &RedisClient{Client: redis.NewClient(&redis.Options{
			Addr: opts.RedisAddr,
		})}, nil
	})
}
