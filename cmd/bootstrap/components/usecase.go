package components

import (
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewRoomUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewRecurrenceUseCase,
	),
)
