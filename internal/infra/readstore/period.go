// Package readstore implements the usecase repository interfaces over
// Postgres with pgx. Everything here is read-only; the server owns all
// writes.
package readstore

import (
	"context"
	"errors"

	"roombook/internal/infra"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type PeriodReadStore struct {
	pool *pgxpool.Pool
}

func NewPeriodReadStore(pool *pgxpool.Pool) *PeriodReadStore {
	return &PeriodReadStore{pool: pool}
}

const listPeriodsQuery = `
SELECT id, start_time, end_time
FROM periods
ORDER BY start_time
`

func (r *PeriodReadStore) List(ctx context.Context) ([]*readmodel.PeriodRM, error) {
	rows, err := r.pool.Query(ctx, listPeriodsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list periods", err)
	}
	defer rows.Close()

	var result []*readmodel.PeriodRM
	for rows.Next() {
		var rm readmodel.PeriodRM
		var start, end pgtype.Time
		if err := rows.Scan(&rm.ID, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan period row", err)
		}
		rm.Start = pgconv.ClockTimeFromPgtype(start)
		rm.End = pgconv.ClockTimeFromPgtype(end)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate period rows", err)
	}
	return result, nil
}
