//go:build e2e

package reservation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"tickettock/internal/domain/reservation"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/pkg/config"
	"tickettock/tests/common/builder"
	"tickettock/tests/common/dbtest"
	"tickettock/tests/common/httptest"
	"tickettock/tests/e2e"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	fcfsURL  = "/api/v1/seats/reservation/fcfs"
	resetURL = "/api/v1/seats/reset"
	seatsURL = "/api/v1/seats"
)

// reserve is safe to call from goroutines; it reports failures as errors.
func reserve(router http.Handler, b *builder.ReservationBuilder, seq int64) (*resdto.ReservationResponse, error) {
	body, err := json.Marshal(b.BuildRequestDTO())
	if err != nil {
		return nil, err
	}

	req := nethttptest.NewRequest(http.MethodPost, fcfsURL, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range httptest.ReservationHeaders(b.Identity, seq) {
		req.Header.Set(k, v)
	}

	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var resp resdto.ReservationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *reservationSuite) resetSeats(count int) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetURL,
		map[string]any{"seat_count": count}, httptest.AdminHeaders(s.Config.Admin.Secret))
	var resp resdto.ResetResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Equal(count, resp.SeatCount)
	s.Require().Equal(int64(1), resp.Sequence)
}

// ================================================================================
// self retry
// ================================================================================

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) TestConcurrentRequestsNeverOverGrant() {
	const seats, requests = 9, 60
	s.resetSeats(seats)

	var (
		g       errgroup.Group
		mu      sync.Mutex
		granted = make(map[int64]string)
	)
	for i := range requests {
		b := builder.NewReservationBuilder().WithIndex(i)
		g.Go(func() error {
			resp, err := reserve(s.Router, b, 0)
			if err != nil {
				return err
			}
			if !resp.Success {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			if prev, dup := granted[resp.Seat.ID]; dup {
				return fmt.Errorf("seat %d granted to %s and %s", resp.Seat.ID, prev, b.Identity)
			}
			granted[resp.Seat.ID] = b.Identity
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Len(granted, seats)
	s.Equal(int64(0), dbtest.CountAvailable(s.T(), s.DB))

	late, err := reserve(s.Router, builder.NewReservationBuilder().WithIndex(requests), 0)
	s.Require().NoError(err)
	s.False(late.Success)
	s.Require().NotNil(late.Reason)
	s.Equal("sold_out", *late.Reason)
}

func (s *reservationSuite) TestRepeatedRequestReplays() {
	s.resetSeats(9)
	b := builder.NewReservationBuilder()

	first, err := reserve(s.Router, b, 0)
	s.Require().NoError(err)
	s.Require().True(first.Success)
	s.Nil(first.Reason)
	s.Require().NotNil(first.UserTTLRemaining)

	var g errgroup.Group
	replays := make([]*resdto.ReservationResponse, 10)
	for i := range replays {
		g.Go(func() error {
			resp, err := reserve(s.Router, b, 0)
			replays[i] = resp
			return err
		})
	}
	s.Require().NoError(g.Wait())

	for _, r := range replays {
		s.True(r.Success)
		s.Require().NotNil(r.Reason)
		s.Equal("already_reserved", *r.Reason)
		s.Equal(first.Seat.ID, r.Seat.ID)
		s.Nil(r.Sequence)
		s.Require().NotNil(r.UserTTLRemaining)
		s.LessOrEqual(*r.UserTTLRemaining, *first.UserTTLRemaining)
	}
	s.Equal(int64(8), dbtest.CountAvailable(s.T(), s.DB))
}

func (s *reservationSuite) TestContentionWhenSeatsTakenOutOfBand() {
	s.resetSeats(10)
	for id := int64(1); id <= int64(s.Config.Reservation.MaxAttempts); id++ {
		dbtest.ReserveSeat(s.T(), s.DB, id, "walk-in")
	}

	resp, err := reserve(s.Router, builder.NewReservationBuilder(), 0)
	s.Require().NoError(err)
	s.False(resp.Success)
	s.Require().NotNil(resp.Reason)
	s.Equal("contention", *resp.Reason)
	s.Equal(int64(s.Config.Reservation.MaxAttempts), *resp.Sequence)

	resp, err = reserve(s.Router, builder.NewReservationBuilder(), 0)
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal(int64(s.Config.Reservation.MaxAttempts+1), resp.Seat.ID)
}

func (s *reservationSuite) TestAdminResetRebuildsInventory() {
	s.Run("rejects a wrong token without touching state", func() {
		s.resetSeats(9)
		_, err := reserve(s.Router, builder.NewReservationBuilder(), 0)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetURL,
			map[string]any{"seat_count": 5}, httptest.AdminHeaders("nope"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
		s.Equal(int64(8), dbtest.CountAvailable(s.T(), s.DB))
	})

	s.Run("five seats after reset", func() {
		s.resetSeats(9)
		_, err := reserve(s.Router, builder.NewReservationBuilder(), 0)
		s.Require().NoError(err)

		s.resetSeats(5)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, seatsURL, nil, nil)
		var seats []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &seats)
		s.Require().Len(seats, 5)
		for i, seat := range seats {
			s.Equal(int64(i+1), seat.ID)
			s.Equal("available", seat.Status)
		}

		// the earlier holder is granted afresh, starting from sequence 1
		resp, err := reserve(s.Router, builder.NewReservationBuilder(), 0)
		s.Require().NoError(err)
		s.Nil(resp.Reason)
		s.Equal(int64(1), resp.Seat.ID)
		s.Equal(int64(1), *resp.Sequence)
	})
}

func (s *reservationSuite) TestSeatEndpoints() {
	// seeded directly; the sequence counter was dropped with the rest of the keys
	dbtest.SeedSeats(s.T(), s.DB, 3)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, seatsURL+"/2/reserve",
		builder.NewReservationBuilder().BuildRequestDTO(), nil)
	var seat resdto.SeatResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &seat)
	s.Equal("reserved", seat.Status)
	s.Require().NotNil(dbtest.SeatHolder(s.T(), s.DB, 2))

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, seatsURL+"/2/reserve",
		builder.NewReservationBuilder().WithIndex(9).BuildRequestDTO(), nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Seat already reserved")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, seatsURL+"/4/reserve",
		builder.NewReservationBuilder().BuildRequestDTO(), nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Seat not found")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, seatsURL+"/2", nil, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &seat)
	s.Require().NotNil(seat.ReservedBy)
	s.Equal("Alice", *seat.ReservedBy)
	s.NotNil(seat.ReservedAt)

	// the FCFS queue skips the directly reserved seat
	first, err := reserve(s.Router, builder.NewReservationBuilder().WithIndex(1), 0)
	s.Require().NoError(err)
	s.Equal(int64(1), first.Seat.ID)
	second, err := reserve(s.Router, builder.NewReservationBuilder().WithIndex(2), 0)
	s.Require().NoError(err)
	s.Equal(int64(3), second.Seat.ID)
}

// ================================================================================
// pinned
// ================================================================================

type pinnedSuite struct {
	e2e.SharedSuite
}

func TestPinnedSuite(t *testing.T) {
	t.Parallel()
	s := new(pinnedSuite)
	s.ConfigMutator = func(c *config.Config) { c.Reservation.Strategy = string(reservation.StrategyPinned) }
	suite.Run(t, s)
}

func (s *pinnedSuite) TestNineSeatsNineRequests() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetURL,
		map[string]any{"seat_count": 9}, httptest.AdminHeaders(s.Config.Admin.Secret))
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	var g errgroup.Group
	results := make([]*resdto.ReservationResponse, 9)
	for i := range 9 {
		b := builder.NewReservationBuilder().WithIndex(i + 1)
		g.Go(func() error {
			resp, err := reserve(s.Router, b, int64(i+1))
			results[i] = resp
			return err
		})
	}
	s.Require().NoError(g.Wait())

	for i, r := range results {
		s.True(r.Success, "request %d", i+1)
		s.Equal(int64(i+1), r.Seat.ID)
	}
	s.Equal(int64(0), dbtest.CountAvailable(s.T(), s.DB))

	tenth, err := reserve(s.Router, builder.NewReservationBuilder().WithIndex(10), 10)
	s.Require().NoError(err)
	s.False(tenth.Success)
	s.Require().NotNil(tenth.Reason)
	s.Equal("sold_out", *tenth.Reason)
	s.Equal(int64(10), *tenth.Sequence)
}

func (s *pinnedSuite) TestMissingSequenceIsRejected() {
	b := builder.NewReservationBuilder()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fcfsURL, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 0))
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-FCFS-Sequence header is required")
}
