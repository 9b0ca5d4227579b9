// Package readmodel holds the read-side DTOs exchanged between the
// repositories, the usecases, and the handler layer.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID       uuid.UUID
	Name     string
	Capacity int32
	Status   string
}

// PeriodRM carries a configured opening period; start and end are
// offsets from midnight.
type PeriodRM struct {
	ID    uuid.UUID
	Start time.Duration
	End   time.Duration
}

type BookingRM struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

type SessionRM struct {
	ID        uuid.UUID
	Name      string
	StartTime time.Time
	EndTime   time.Time
}
