// Package redis stores the transaction journal in Redis. Each in-flight
// transaction is a JSON value with a TTL, indexed by a set so the journal can
// be listed without scanning the keyspace.
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Options holds the connection settings.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type client struct {
	conn redis.UniversalClient
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the server answers before returning.
func NewClient(ctx context.Context, opts Options) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Username:    opts.Username,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	return &client{conn: conn}, nil
}
