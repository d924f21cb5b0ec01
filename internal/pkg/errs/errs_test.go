//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tickettock/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("marked error matches its mark and keeps its cause", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrInfraUnavailable)

		assert.True(t, errs.Is(err, errs.ErrInfraUnavailable))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("reserve: %w", errs.Wrap(errs.Mark(cause, errs.ErrSeatNotFound), "lookup"))

		assert.True(t, errs.Is(err, errs.ErrSeatNotFound))
	})

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("wrap and mark in one step", func(t *testing.T) {
		err := errs.WrapMark(cause, "count available seats", errs.ErrInfraUnavailable)

		assert.True(t, errs.Is(err, errs.ErrInfraUnavailable))
		assert.True(t, errs.Is(err, cause))
		assert.Contains(t, err.Error(), "count available seats")
	})

	t.Run("stack lines are bounded", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 3)
		assert.LessOrEqual(t, len(lines), 3)
		assert.Contains(t, lines[0], "boom")
	})
}
