package bootstrap

import (
	"context"
	"log/slog"

	"tickettock/internal/infra/messaging"
	"tickettock/internal/pkg/config"
	"tickettock/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if !cfg.Events.Enabled {
		return messaging.NewNoopPublisher()
	}

	publisher := messaging.NewPublisher(cfg.Events)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			publisher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return publisher.Close(ctx)
		},
	})

	slog.Info("seat events enabled", "queue", cfg.Events.Queue)
	return publisher
}
