package components

import (
	"tickettock/internal/handler"
	"tickettock/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewSeatHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
