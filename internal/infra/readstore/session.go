package readstore

import (
	"context"
	"time"

	"roombook/internal/infra"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionReadStore struct {
	pool *pgxpool.Pool
}

func NewSessionReadStore(pool *pgxpool.Pool) *SessionReadStore {
	return &SessionReadStore{pool: pool}
}

const findCurrentSessionQuery = `
SELECT id, name, start_time, end_time
FROM sessions
WHERE is_current = TRUE AND end_time > $1
ORDER BY start_time
LIMIT 1
`

// FindCurrent returns nil without error when no session scopes bookings
// right now.
func (r *SessionReadStore) FindCurrent(ctx context.Context, now time.Time) (*readmodel.SessionRM, error) {
	var rm readmodel.SessionRM
	var start, end pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, findCurrentSessionQuery, pgconv.TimeToPgtype(now)).
		Scan(&rm.ID, &rm.Name, &start, &end)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find current session", err)
	}
	rm.StartTime = pgconv.TimeFromPgtype(start)
	rm.EndTime = pgconv.TimeFromPgtype(end)
	return &rm, nil
}
