package bootstrap

import (
	"time"

	"roombook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

// NewBookingLocation resolves the IANA zone all calendar-day math runs in.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Server.TimeZone)
}
