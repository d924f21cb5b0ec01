//go:build unit

package seat_test

import (
	"strings"
	"testing"
	"time"

	"tickettock/internal/domain/seat"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type seatState struct {
	ID         int64
	Status     seat.Status
	Holder     *string
	Contact    *string
	ReservedAt *time.Time
}

func stateOf(s *seat.Seat) seatState {
	return seatState{
		ID:         s.ID(),
		Status:     s.Status(),
		Holder:     s.Holder(),
		Contact:    s.Contact(),
		ReservedAt: s.ReservedAt(),
	}
}

func TestSeat(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new seat is available", func(t *testing.T) {
		s, err := seat.NewAvailableSeat(1)
		require.NoError(t, err)

		assert.True(t, s.IsAvailable())
		assert.Equal(t, seat.StatusAvailable, s.Status())
		assert.Nil(t, s.Holder())
	})

	t.Run("non-positive id is rejected", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := seat.NewAvailableSeat(id)
			assert.ErrorIs(t, err, seat.ErrInvalidID)
		}
	})

	t.Run("reserve sets holder and timestamp", func(t *testing.T) {
		s, err := seat.NewAvailableSeat(3)
		require.NoError(t, err)
		h, err := seat.NewHolder("  Alice ", strPtr("010-0000-0000"))
		require.NoError(t, err)

		require.NoError(t, s.Reserve(h, now))

		want := seatState{
			ID:         3,
			Status:     seat.StatusReserved,
			Holder:     strPtr("Alice"),
			Contact:    strPtr("010-0000-0000"),
			ReservedAt: &now,
		}
		if diff := cmp.Diff(want, stateOf(s)); diff != "" {
			t.Errorf("seat mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reserved seat never re-grants", func(t *testing.T) {
		s, err := seat.NewAvailableSeat(4)
		require.NoError(t, err)
		first, _ := seat.NewHolder("Alice", nil)
		second, _ := seat.NewHolder("Bob", nil)

		require.NoError(t, s.Reserve(first, now))
		err = s.Reserve(second, now.Add(time.Minute))

		assert.ErrorIs(t, err, seat.ErrAlreadyReserved)
		assert.Equal(t, "Alice", *s.Holder())
		assert.Equal(t, now, *s.ReservedAt())
	})
}

func TestNewHolder(t *testing.T) {
	tests := []struct {
		name    string
		holder  string
		contact *string
		errIs   error
	}{
		{name: "name only", holder: "Alice"},
		{name: "name at max length", holder: strings.Repeat("a", seat.MaxHolderNameLength)},
		{name: "multibyte name at max length", holder: strings.Repeat("가", seat.MaxHolderNameLength)},
		{name: "name too long", holder: strings.Repeat("a", seat.MaxHolderNameLength+1), errIs: seat.ErrHolderTooLong},
		{name: "blank name", holder: "   ", errIs: seat.ErrEmptyHolderName},
		{name: "contact at max length", holder: "Alice", contact: strPtr(strings.Repeat("1", seat.MaxContactLength))},
		{name: "contact too long", holder: "Alice", contact: strPtr(strings.Repeat("1", seat.MaxContactLength+1)), errIs: seat.ErrContactTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seat.NewHolder(tt.holder, tt.contact)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("blank contact is dropped", func(t *testing.T) {
		h, err := seat.NewHolder("Alice", strPtr("  "))
		require.NoError(t, err)
		assert.Nil(t, h.Contact())
	})
}
