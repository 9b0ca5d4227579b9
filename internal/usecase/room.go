package usecase

import (
	"context"

	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomUseCase interface {
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
}

func NewRoomUseCase(roomRepo RoomRepository) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo}
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rooms, err := u.roomRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	room, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return room, nil
}
