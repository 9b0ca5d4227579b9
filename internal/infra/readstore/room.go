package readstore

import (
	"context"

	"roombook/internal/infra"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{pool: pool}
}

const findRoomByIDQuery = `
SELECT id, name, capacity, status
FROM rooms
WHERE id = $1
`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	var rm readmodel.RoomRM
	err := r.pool.QueryRow(ctx, findRoomByIDQuery, id).
		Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.Status)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &rm, nil
}

const listRoomsQuery = `
SELECT id, name, capacity, status
FROM rooms
ORDER BY name
`

func (r *RoomReadStore) List(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rows, err := r.pool.Query(ctx, listRoomsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		var rm readmodel.RoomRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
