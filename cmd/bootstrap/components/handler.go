package components

import (
	"roombook/internal/handler"
	"roombook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewAvailabilityHandler,
		api.NewRecurrenceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
