package readstore

import (
	"context"
	"time"

	"roombook/internal/infra"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

// Half-open intersection with the day: a booking ending exactly at the
// day's midnight belongs to the previous day only.
const findBlockingBookingsQuery = `
SELECT id, room_id, start_time, end_time, status
FROM bookings
WHERE room_id = $1
  AND status IN ('pending', 'confirmed')
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time, end_time
`

func (r *BookingReadStore) FindBlockingByRoomAndDate(ctx context.Context, roomID uuid.UUID, day time.Time) ([]*readmodel.BookingRM, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, findBlockingBookingsQuery,
		roomID, pgconv.TimeToPgtype(dayStart), pgconv.TimeToPgtype(dayEnd))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocking bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		var rm readmodel.BookingRM
		var start, end pgtype.Timestamptz
		if err := rows.Scan(&rm.ID, &rm.RoomID, &start, &end, &rm.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		rm.StartTime = pgconv.TimeFromPgtype(start)
		rm.EndTime = pgconv.TimeFromPgtype(end)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
