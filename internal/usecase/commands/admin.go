package commands

import (
	"context"
	"log/slog"

	"tickettock/internal/pkg/errs"
	"tickettock/internal/pkg/password"
)

type AdminPolicy struct {
	// Secret is either a plain value or a bcrypt hash.
	Secret           string
	SequenceBase     int64
	DefaultSeatCount int
	MaxSeatCount     int
}

type ResetParams struct {
	Token     string
	SeatCount *int
}

type ResetResult struct {
	SeatCount int
	// Sequence is the value the allocator will issue next.
	Sequence int64
	// PurgedRecords is -1 when idempotency cleanup failed.
	PurgedRecords int
}

type AdminCommands interface {
	Reset(ctx context.Context, params ResetParams) (*ResetResult, error)
}

type adminResetService struct {
	resetter  SeatResetter
	sequences SequenceAllocator
	guard     IdempotencyGuard
	policy    AdminPolicy
}

func NewAdminCommands(
	resetter SeatResetter,
	sequences SequenceAllocator,
	guard IdempotencyGuard,
	policy AdminPolicy,
) AdminCommands {
	if policy.SequenceBase < 1 {
		policy.SequenceBase = 1
	}
	return &adminResetService{
		resetter:  resetter,
		sequences: sequences,
		guard:     guard,
		policy:    policy,
	}
}

// Reset is not safe under concurrent reservation traffic. The seat rebuild is
// transactional; the sequence reset and idempotency purge that follow are not.
func (a *adminResetService) Reset(ctx context.Context, params ResetParams) (*ResetResult, error) {
	if err := password.Verify(a.policy.Secret, params.Token); err != nil {
		slog.WarnContext(ctx, "admin reset rejected", "reason", err.Error())
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	count, err := a.seatCount(params.SeatCount)
	if err != nil {
		return nil, err
	}

	if err := a.resetter.Reset(ctx, count); err != nil {
		return nil, infraErr(err, "seat reset failed")
	}

	if err := a.sequences.Reset(ctx, a.policy.SequenceBase); err != nil {
		return nil, infraErr(err, "sequence reset failed after seats were rebuilt")
	}

	purged, err := a.guard.Purge(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to purge idempotency records", "error", err.Error())
		purged = -1
	}

	sequence, err := a.sequences.Peek(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to read back sequence", "error", err.Error())
		sequence = a.policy.SequenceBase
	}

	slog.InfoContext(ctx, "seats reset",
		"seat_count", count,
		"sequence", sequence,
		"purged_records", purged)

	return &ResetResult{
		SeatCount:     count,
		Sequence:      sequence,
		PurgedRecords: purged,
	}, nil
}

func (a *adminResetService) seatCount(requested *int) (int, error) {
	if requested == nil {
		return a.policy.DefaultSeatCount, nil
	}
	if *requested < 1 || *requested > a.policy.MaxSeatCount {
		return 0, errs.Mark(errs.ErrInvalidSeatCount, errs.ErrValidation)
	}
	return *requested, nil
}
