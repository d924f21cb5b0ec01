package components

import (
	"tickettock/internal/infra/db"
	"tickettock/internal/infra/kv"
	"tickettock/internal/infra/memory"
	"tickettock/internal/infra/readstore"
	"tickettock/internal/infra/repository"
	"tickettock/internal/infra/uow"
	"tickettock/internal/pkg/clock"
	"tickettock/internal/pkg/config"
	"tickettock/internal/usecase/commands"
	"tickettock/internal/usecase/queries"
	"tickettock/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func PersistenceModule(backend string) fx.Option {
	if backend == config.BackendMemory {
		return memoryModule
	}
	return fx.Module("persistence",
		baseOption,
		readstoreModule,
		repositoryModule,
		kvModule,
	)
}

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSeatReadStore,
			fx.As(new(queries.SeatReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Seat
		fx.Annotate(
			repository.NewSeatRepository,
			fx.As(new(commands.SeatStore)),
		),
		fx.Annotate(
			uow.NewSeatResetter,
			fx.As(new(commands.SeatResetter)),
		),
	),
)

var kvModule = fx.Module("persistence/kv",
	fx.Provide(
		fx.Annotate(
			NewSequenceCounter,
			fx.As(new(commands.SequenceAllocator)),
		),
		fx.Annotate(
			NewIdempotencyGuard,
			fx.As(new(commands.IdempotencyGuard)),
		),
	),
)

var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			memory.NewCounter,
			fx.As(new(commands.SequenceAllocator)),
		),
		fx.Annotate(
			memory.NewIdempotencyGuard,
			fx.As(new(commands.IdempotencyGuard)),
		),
		NewMemorySeatStore,
		func(s *memory.SeatStore) commands.SeatStore { return s },
		func(s *memory.SeatStore) commands.SeatResetter { return s },
		func(s *memory.SeatStore) queries.SeatReadStore { return s },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSequenceCounter(client *redis.Client, cfg config.Config) *kv.Counter {
	return kv.NewCounter(client, cfg.Redis.KeyPrefix)
}

func NewIdempotencyGuard(client *redis.Client, cfg config.Config) *kv.IdempotencyGuard {
	return kv.NewIdempotencyGuard(client, cfg.Redis.KeyPrefix)
}

// NewMemorySeatStore starts with the configured default inventory.
func NewMemorySeatStore(clk clock.Clock, cfg config.Config) *memory.SeatStore {
	return memory.NewSeatStore(clk, cfg.Admin.DefaultSeatCount)
}
