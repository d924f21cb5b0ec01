package kv

import (
	"context"
	"errors"
	"time"

	"tickettock/internal/infra"
	"tickettock/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const purgeScanCount = 500

type IdempotencyGuard struct {
	client redis.UniversalClient
	prefix string
}

func NewIdempotencyGuard(client redis.UniversalClient, prefix string) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, prefix: prefix}
}

func (g *IdempotencyGuard) Lookup(ctx context.Context, identity string) (*commands.IdempotencyRecord, error) {
	key := userKey(g.prefix, identity)

	var (
		get *redis.StringCmd
		ttl *redis.DurationCmd
	)
	_, err := g.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr("failed to look up idempotency record", err, infra.KindKVFailure)
	}

	seatID, err := get.Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("malformed idempotency record", err, infra.KindKVFailure)
	}

	record := &commands.IdempotencyRecord{SeatID: seatID}
	// TTL reports -1 for keys without expiry and -2 for keys that vanished
	// between the two commands.
	switch remaining := ttl.Val(); {
	case remaining == -2:
		return nil, nil
	case remaining > 0:
		record.TTLRemaining = &remaining
	}
	return record, nil
}

func (g *IdempotencyGuard) Record(ctx context.Context, identity string, seatID int64, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := g.client.Set(ctx, userKey(g.prefix, identity), seatID, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to record idempotency", err, infra.KindKVFailure)
	}
	return nil
}

func (g *IdempotencyGuard) Purge(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := g.client.Scan(ctx, cursor, userKeyPattern(g.prefix), purgeScanCount).Result()
		if err != nil {
			return deleted, infra.WrapRepoErr("failed to scan idempotency records", err, infra.KindKVFailure)
		}

		if len(keys) > 0 {
			n, err := g.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, infra.WrapRepoErr("failed to delete idempotency records", err, infra.KindKVFailure)
			}
			deleted += int(n)
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
