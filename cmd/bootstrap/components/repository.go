package components

import (
	"roombook/internal/infra/readstore"
	"roombook/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			readstore.NewPeriodReadStore,
			fx.As(new(usecase.PeriodRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewSettingReadStore,
			fx.As(new(usecase.SettingsRepository)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(usecase.SessionRepository)),
		),
	),
)
