package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod    = errors.New("period start must be before end")
	ErrUnorderedPeriods = errors.New("periods must be ordered by start time")
	ErrOverlappingPeriods = errors.New("periods must not overlap")
)

// Period is a recurring daily opening interval with no date component.
// The period list is loaded once from configuration and shared read-only
// by every room and date.
type Period struct {
	id    uuid.UUID
	start time.Duration // offset from midnight
	end   time.Duration
}

func NewPeriod(id uuid.UUID, start, end time.Duration) (Period, error) {
	if start < 0 || end > 24*time.Hour || start >= end {
		return Period{}, ErrInvalidPeriod
	}
	return Period{id: id, start: start, end: end}, nil
}

func (p Period) ID() uuid.UUID        { return p.id }
func (p Period) Start() time.Duration { return p.start }
func (p Period) End() time.Duration   { return p.end }

// DatedPeriod is a Period bound to one concrete date. Disabled is
// recomputed by the availability filter whenever bookings, window, or
// date change; materialization always starts from enabled.
type DatedPeriod struct {
	PeriodID uuid.UUID
	Interval Interval
	Disabled bool
}
