package readstore

import (
	"context"
	"time"

	"roombook/internal/infra"
	"roombook/internal/pkg/timedelta"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setting keys; values are "HH:MM:SS" offsets.
const (
	settingBookingWindow = "booking_window"
	settingMaxDuration   = "max_duration"
)

type SettingReadStore struct {
	pool *pgxpool.Pool
}

func NewSettingReadStore(pool *pgxpool.Pool) *SettingReadStore {
	return &SettingReadStore{pool: pool}
}

const findSettingQuery = `
SELECT value
FROM settings
WHERE key = $1
`

func (r *SettingReadStore) BookingWindow(ctx context.Context) (time.Duration, error) {
	var value string
	err := r.pool.QueryRow(ctx, findSettingQuery, settingBookingWindow).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return 0, infra.WrapRepoErr("booking window setting not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read booking window setting", err)
	}

	offset, err := timedelta.Parse(value)
	if err != nil {
		return 0, infra.WrapRepoErr("malformed booking window setting", err)
	}
	return offset, nil
}

// MaxDuration returns nil when no cap is configured.
func (r *SettingReadStore) MaxDuration(ctx context.Context) (*time.Duration, error) {
	var value string
	err := r.pool.QueryRow(ctx, findSettingQuery, settingMaxDuration).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read max duration setting", err)
	}

	limit, err := timedelta.Parse(value)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed max duration setting", err)
	}
	return &limit, nil
}
