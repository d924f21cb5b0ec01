package kv

import (
	"context"
	"errors"

	"tickettock/internal/infra"

	"github.com/redis/go-redis/v9"
)

// Counter is the shared FCFS sequence. The key holds the last issued value.
type Counter struct {
	client redis.Cmdable
	key    string
}

func NewCounter(client redis.Cmdable, prefix string) *Counter {
	return &Counter{client: client, key: sequenceKey(prefix)}
}

func (c *Counter) Next(ctx context.Context) (int64, error) {
	v, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment sequence", err, infra.KindKVFailure)
	}
	return v, nil
}

func (c *Counter) Reset(ctx context.Context, base int64) error {
	if err := c.client.Set(ctx, c.key, base-1, 0).Err(); err != nil {
		return infra.WrapRepoErr("failed to reset sequence", err, infra.KindKVFailure)
	}
	return nil
}

func (c *Counter) Peek(ctx context.Context) (int64, error) {
	last, err := c.client.Get(ctx, c.key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 1, nil
		}
		return 0, infra.WrapRepoErr("failed to read sequence", err, infra.KindKVFailure)
	}
	return last + 1, nil
}
