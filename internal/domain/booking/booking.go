// Package booking models the read-only reservation snapshot the engine
// receives per (room, date). The server owns the canonical records; every
// advisory computation here is re-validated server-side on submission.
package booking

import (
	"time"

	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
)

type Booking struct {
	id       uuid.UUID
	roomID   uuid.UUID
	interval schedule.Interval
	status   Status
}

func NewBooking(id, roomID uuid.UUID, start, end time.Time, status Status) (Booking, error) {
	if !status.IsValid() {
		return Booking{}, ErrInvalidStatus
	}
	iv, err := schedule.NewInterval(start, end)
	if err != nil {
		return Booking{}, err
	}
	return Booking{id: id, roomID: roomID, interval: iv, status: status}, nil
}

func (b Booking) ID() uuid.UUID               { return b.id }
func (b Booking) RoomID() uuid.UUID           { return b.roomID }
func (b Booking) Interval() schedule.Interval { return b.interval }
func (b Booking) Status() Status              { return b.status }

// Blocks reports whether the booking occupies its slot for availability
// purposes. Cancelled and rejected bookings are inert.
func (b Booking) Blocks() bool {
	return b.status.Blocks()
}
