package commands

import (
	"context"
	"log/slog"
	"time"

	"tickettock/internal/domain/reservation"
	"tickettock/internal/domain/seat"
	"tickettock/internal/infra"
	"tickettock/internal/pkg/clock"
	"tickettock/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReserveParams struct {
	Identity   string
	HolderName string
	Contact    *string
	// PinnedSequence is honored only under the pinned strategy.
	PinnedSequence *int64
}

type ReservationPolicy struct {
	Strategy       reservation.Strategy
	MaxAttempts    int
	IdempotencyTTL time.Duration
}

type ReservationCommands interface {
	Reserve(ctx context.Context, params ReserveParams) (*reservation.Outcome, error)
}

type reservationCoordinator struct {
	sequences SequenceAllocator
	guard     IdempotencyGuard
	store     SeatStore
	publisher EventPublisher
	clock     clock.Clock
	policy    ReservationPolicy
}

func NewReservationCommands(
	sequences SequenceAllocator,
	guard IdempotencyGuard,
	store SeatStore,
	publisher EventPublisher,
	clock clock.Clock,
	policy ReservationPolicy,
) ReservationCommands {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &reservationCoordinator{
		sequences: sequences,
		guard:     guard,
		store:     store,
		publisher: publisher,
		clock:     clock,
		policy:    policy,
	}
}

func (r *reservationCoordinator) Reserve(ctx context.Context, params ReserveParams) (*reservation.Outcome, error) {
	identity, err := reservation.NewIdentity(params.Identity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	holder, err := seat.NewHolder(params.HolderName, params.Contact)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	pinned, err := r.pinnedSequence(params.PinnedSequence)
	if err != nil {
		return nil, err
	}

	prior, err := r.guard.Lookup(ctx, identity.String())
	if err != nil {
		return nil, infraErr(err, "idempotency lookup failed")
	}
	if prior != nil {
		return r.replay(ctx, prior)
	}

	return r.assign(ctx, identity, holder, pinned)
}

func (r *reservationCoordinator) pinnedSequence(raw *int64) (*reservation.Sequence, error) {
	if r.policy.Strategy != reservation.StrategyPinned {
		return nil, nil
	}
	if raw == nil {
		return nil, errs.Mark(errs.ErrSequenceRequired, errs.ErrValidation)
	}

	seq, err := reservation.NewSequence(*raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return &seq, nil
}

func (r *reservationCoordinator) replay(ctx context.Context, prior *IdempotencyRecord) (*reservation.Outcome, error) {
	remaining, err := r.countAvailable(ctx)
	if err != nil {
		return nil, err
	}

	granted := seat.Hydrate(prior.SeatID, seat.StatusReserved, nil, nil, nil)
	return reservation.Replayed(granted, remaining, prior.TTLRemaining), nil
}

// assign walks sequences until a seat is granted, the domain is exhausted, or
// the attempt budget runs out. Only ALREADY_RESERVED is retried.
func (r *reservationCoordinator) assign(
	ctx context.Context,
	identity reservation.Identity,
	holder seat.Holder,
	pinned *reservation.Sequence,
) (*reservation.Outcome, error) {
	attempts := r.policy.MaxAttempts
	if pinned != nil {
		attempts = 1
	}

	var seq reservation.Sequence
	for attempt := 1; attempt <= attempts; attempt++ {
		var err error
		seq, err = r.obtainSequence(ctx, pinned)
		if err != nil {
			return nil, err
		}

		granted, err := r.store.ConditionalAssign(ctx, seq.Int64(), holder)
		switch {
		case err == nil:
			return r.complete(ctx, identity, granted, seq)

		case infra.IsKind(err, infra.KindAlreadyReserved):
			slog.DebugContext(ctx, "seat already reserved",
				"identity", identity.String(),
				"sequence", seq.Int64(),
				"attempt", attempt,
				"max_attempts", attempts)
			continue

		case infra.IsKind(err, infra.KindNotFound):
			remaining, countErr := r.countAvailable(ctx)
			if countErr != nil {
				return nil, countErr
			}
			return reservation.SoldOut(seq, remaining), nil

		case infra.IsFailure(err):
			return nil, infraErr(err, "conditional assign failed")

		default:
			return nil, errs.Wrap(err, "conditional assign failed")
		}
	}

	remaining, err := r.countAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return reservation.Contention(seq, remaining), nil
}

func (r *reservationCoordinator) obtainSequence(ctx context.Context, pinned *reservation.Sequence) (reservation.Sequence, error) {
	if pinned != nil {
		return *pinned, nil
	}

	next, err := r.sequences.Next(ctx)
	if err != nil {
		return 0, infraErr(err, "sequence allocation failed")
	}

	seq, err := reservation.NewSequence(next)
	if err != nil {
		return 0, infraErr(err, "sequence allocator returned a non-positive value")
	}
	return seq, nil
}

func (r *reservationCoordinator) complete(
	ctx context.Context,
	identity reservation.Identity,
	granted *seat.Seat,
	seq reservation.Sequence,
) (*reservation.Outcome, error) {
	if err := r.guard.Record(ctx, identity.String(), granted.ID(), r.policy.IdempotencyTTL); err != nil {
		slog.WarnContext(ctx, "failed to record idempotency",
			"identity", identity.String(),
			"seat_id", granted.ID(),
			"error", err.Error())
	}

	r.publish(ctx, identity, granted, seq)

	// The seat is already committed; a failed count must not turn it into an error.
	remaining, err := r.store.CountAvailable(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to count available seats after grant",
			"seat_id", granted.ID(),
			"error", err.Error())
		remaining = reservation.RemainingUnknown
	}

	return reservation.Granted(granted, seq, remaining, r.grantTTL()), nil
}

func (r *reservationCoordinator) publish(ctx context.Context, identity reservation.Identity, granted *seat.Seat, seq reservation.Sequence) {
	reservedAt := r.clock.Now()
	if at := granted.ReservedAt(); at != nil {
		reservedAt = *at
	}

	var holderName string
	if h := granted.Holder(); h != nil {
		holderName = *h
	}

	sequence := seq.Int64()
	evt := SeatReservedEvent{
		EventID:    uuid.NewString(),
		SeatID:     granted.ID(),
		Identity:   identity.String(),
		Holder:     holderName,
		Sequence:   &sequence,
		ReservedAt: reservedAt,
	}

	if err := r.publisher.PublishSeatReserved(ctx, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish seat reserved event",
			"seat_id", granted.ID(),
			"event_id", evt.EventID,
			"error", err.Error())
	}
}

func (r *reservationCoordinator) countAvailable(ctx context.Context) (int64, error) {
	remaining, err := r.store.CountAvailable(ctx)
	if err != nil {
		return 0, infraErr(err, "count available failed")
	}
	return remaining, nil
}

func (r *reservationCoordinator) grantTTL() *time.Duration {
	if r.policy.IdempotencyTTL <= 0 {
		return nil
	}
	ttl := r.policy.IdempotencyTTL
	return &ttl
}

func infraErr(err error, msg string) error {
	slog.Error(msg, "error", err.Error())
	return errs.WrapMark(err, msg, errs.ErrInfraUnavailable)
}
