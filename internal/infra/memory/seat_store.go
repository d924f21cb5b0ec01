package memory

import (
	"context"
	"sync"

	"tickettock/internal/domain/seat"
	"tickettock/internal/infra"
	"tickettock/internal/pkg/clock"
	"tickettock/internal/usecase/queries"
)

// SeatStore keeps seats 1..N in a slice; index i holds seat i+1.
type SeatStore struct {
	mu    sync.RWMutex
	clock clock.Clock
	seats []*seat.Seat
}

func NewSeatStore(clock clock.Clock, initial int) *SeatStore {
	s := &SeatStore{clock: clock}
	s.rebuild(initial)
	return s
}

func (s *SeatStore) ConditionalAssign(_ context.Context, id int64, holder seat.Holder) (*seat.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapRepoErr("seat not found", nil, infra.KindNotFound)
	}

	if err := target.Reserve(holder, s.clock.Now()); err != nil {
		return nil, infra.WrapRepoErr("seat already reserved", err, infra.KindAlreadyReserved)
	}
	return snapshot(target), nil
}

func (s *SeatStore) CountAvailable(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, st := range s.seats {
		if st.IsAvailable() {
			n++
		}
	}
	return n, nil
}

func (s *SeatStore) Reset(_ context.Context, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rebuild(count)
	return nil
}

func (s *SeatStore) FindAll(_ context.Context) ([]*queries.SeatView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.SeatView, len(s.seats))
	for i, st := range s.seats {
		views[i] = queries.ToSeatView(st)
	}
	return views, nil
}

func (s *SeatStore) FindByID(_ context.Context, id int64) (*queries.SeatView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapRepoErr("seat not found", nil, infra.KindNotFound)
	}
	return queries.ToSeatView(target), nil
}

func (s *SeatStore) lookup(id int64) (*seat.Seat, bool) {
	if id < 1 || id > int64(len(s.seats)) {
		return nil, false
	}
	return s.seats[id-1], true
}

func (s *SeatStore) rebuild(count int) {
	seats := make([]*seat.Seat, 0, count)
	for i := 1; i <= count; i++ {
		st, _ := seat.NewAvailableSeat(int64(i))
		seats = append(seats, st)
	}
	s.seats = seats
}

// snapshot detaches the returned seat from store-owned state.
func snapshot(st *seat.Seat) *seat.Seat {
	return seat.Hydrate(st.ID(), st.Status(), st.Holder(), st.Contact(), st.ReservedAt())
}
