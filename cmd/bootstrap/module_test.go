//go:build unit

package bootstrap_test

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"tickettock/cmd/bootstrap"
	"tickettock/internal/domain/reservation"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/pkg/config"
	"tickettock/tests/common/builder"
	"tickettock/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newMemoryApp(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Admin.DefaultSeatCount = 3
	if mutate != nil {
		mutate(&cfg)
	}

	var router *gin.Engine
	app := fxtest.New(t,
		bootstrap.Module(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&router),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, router)
	return router
}

func TestModule_MemoryBackend(t *testing.T) {
	router := newMemoryApp(t, nil)
	url := "/api/v1/seats/reservation/fcfs"

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	for i := 1; i <= 3; i++ {
		b := builder.NewReservationBuilder().WithIndex(i)
		rec := httptest.PerformRequest(t, router, http.MethodPost, url, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 0))

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		require.True(t, resp.Success)
		assert.Equal(t, int64(i), resp.Seat.ID)
		assert.Equal(t, int64(3-i), resp.RemainingSeats)
	}

	b := builder.NewReservationBuilder().WithIndex(4)
	rec = httptest.PerformRequest(t, router, http.MethodPost, url, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 0))
	var soldOut resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &soldOut)
	assert.False(t, soldOut.Success)
	require.NotNil(t, soldOut.Reason)
	assert.Equal(t, "sold_out", *soldOut.Reason)

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/seats/reset", map[string]any{"seat_count": 2}, httptest.AdminHeaders("wrong"))
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Forbidden")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/seats/reset", map[string]any{"seat_count": 0}, httptest.AdminHeaders("wrong"))
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Forbidden")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/seats/reset", map[string]any{"seat_count": 0}, httptest.AdminHeaders("test-admin-secret"))
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid seat count")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/seats/reset", map[string]any{"seat_count": 2}, httptest.AdminHeaders("test-admin-secret"))
	var reset resdto.ResetResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &reset)
	assert.Equal(t, 2, reset.SeatCount)
	assert.Equal(t, int64(1), reset.Sequence)

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/v1/seats", nil, nil)
	var seats []resdto.SeatResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &seats)
	assert.Len(t, seats, 2)
}

func TestModule_PinnedStrategy(t *testing.T) {
	router := newMemoryApp(t, func(c *config.Config) { c.Reservation.Strategy = string(reservation.StrategyPinned) })
	url := "/api/v1/seats/reservation/fcfs"
	b := builder.NewReservationBuilder()

	rec := httptest.PerformRequest(t, router, http.MethodPost, url, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 0))
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "X-FCFS-Sequence header is required")

	rec = httptest.PerformRequest(t, router, http.MethodPost, url, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 2))
	var resp resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Seat.ID)
	assert.Equal(t, int64(2), *resp.Sequence)
}

func TestModule_EventsDoNotBlockOnSilentBroker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			// never answer the handshake
			go func() { _, _ = io.Copy(io.Discard, c) }()
		}
	}()

	router := newMemoryApp(t, func(c *config.Config) {
		c.Events.Enabled = true
		c.Events.AMQPURL = "amqp://guest:guest@" + ln.Addr().String() + "/"
		c.Events.Queue = "seat.reserved"
		c.Events.DialTimeout = 300 * time.Millisecond
	})
	url := "/api/v1/seats/reservation/fcfs"

	start := time.Now()
	for i := 1; i <= 3; i++ {
		b := builder.NewReservationBuilder().WithIndex(i)
		rec := httptest.PerformRequest(t, router, http.MethodPost, url, b.BuildRequestDTO(), httptest.ReservationHeaders(b.Identity, 0))

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.True(t, resp.Success)
	}
	assert.Less(t, time.Since(start), time.Second)
}
