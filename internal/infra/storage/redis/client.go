// Package redis implements the storage contracts on top of Redis, so the
// registry survives restarts and can be shared by several monitor processes.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// defaultNamespace scopes every key when no namespace is configured.
const defaultNamespace = "mainnet"

type client struct {
	conn      *redis.Client
	namespace string
}

// Option configures the client.
type Option func(*client)

// WithNamespace scopes all keys, typically by Bitcoin network, so registries
// of different networks can share one database.
func WithNamespace(ns string) Option {
	return func(c *client) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:      conn,
		namespace: defaultNamespace,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
