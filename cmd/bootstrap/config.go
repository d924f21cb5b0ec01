package bootstrap

import (
	"tickettock/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config so the storage backend can be
// chosen before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
