package components

import (
	"tickettock/internal/domain/reservation"
	"tickettock/internal/pkg/clock"
	"tickettock/internal/pkg/config"
	"tickettock/internal/usecase/commands"
	"tickettock/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewReservationPolicy,
	NewAdminPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewAdminCommands,
		commands.NewSeatCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSeatQueries,
	),
)

func NewReservationPolicy(cfg config.Config) (commands.ReservationPolicy, error) {
	strategy, err := reservation.ParseStrategy(cfg.Reservation.Strategy)
	if err != nil {
		return commands.ReservationPolicy{}, err
	}
	return commands.ReservationPolicy{
		Strategy:       strategy,
		MaxAttempts:    cfg.Reservation.MaxAttempts,
		IdempotencyTTL: cfg.Reservation.IdempotencyTTL,
	}, nil
}

func NewAdminPolicy(cfg config.Config) commands.AdminPolicy {
	return commands.AdminPolicy{
		Secret:           cfg.Admin.Secret,
		SequenceBase:     cfg.Admin.SequenceBase,
		DefaultSeatCount: cfg.Admin.DefaultSeatCount,
		MaxSeatCount:     cfg.Admin.MaxSeatCount,
	}
}
