package response

import (
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int32     `json:"capacity"`
	Status   string    `json:"status"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
