package memory

import (
	"context"
	"sync"
	"time"

	"tickettock/internal/pkg/clock"
	"tickettock/internal/usecase/commands"
)

type idempotencyEntry struct {
	seatID    int64
	expiresAt time.Time // zero means no expiry
}

type IdempotencyGuard struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]idempotencyEntry
}

func NewIdempotencyGuard(clock clock.Clock) *IdempotencyGuard {
	return &IdempotencyGuard{
		clock:   clock,
		entries: make(map[string]idempotencyEntry),
	}
}

func (g *IdempotencyGuard) Lookup(_ context.Context, identity string) (*commands.IdempotencyRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[identity]
	if !ok {
		return nil, nil
	}

	record := &commands.IdempotencyRecord{SeatID: entry.seatID}
	if entry.expiresAt.IsZero() {
		return record, nil
	}

	remaining := clock.Until(g.clock, entry.expiresAt)
	if remaining <= 0 {
		delete(g.entries, identity)
		return nil, nil
	}
	record.TTLRemaining = &remaining
	return record, nil
}

func (g *IdempotencyGuard) Record(_ context.Context, identity string, seatID int64, ttl time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry := idempotencyEntry{seatID: seatID}
	if ttl > 0 {
		entry.expiresAt = g.clock.Now().Add(ttl)
	}
	g.entries[identity] = entry
	return nil
}

func (g *IdempotencyGuard) Purge(_ context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.entries)
	g.entries = make(map[string]idempotencyEntry)
	return n, nil
}
