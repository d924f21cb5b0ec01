package bootstrap

import (
	"tickettock/cmd/bootstrap/components"
	"tickettock/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		StorageModule(cfg.Storage.Backend),
		MessagingModule,
		components.PersistenceModule(cfg.Storage.Backend),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// StorageModule opens connections only for the backends that need them.
func StorageModule(backend string) fx.Option {
	if backend == config.BackendMemory {
		return fx.Options()
	}
	return fx.Options(DBModule, RedisModule)
}
