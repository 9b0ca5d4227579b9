package readmodel

import (
	"time"

	"roombook/internal/domain/availability"
	"roombook/internal/domain/recurrence"
	"roombook/internal/domain/timeline"
)

// SlotOptionsRM is the picker state for one room and day: the filtered
// periods, both option lists, and the constraints they were computed
// under.
type SlotOptionsRM struct {
	Date         time.Time
	WindowStart  time.Time
	WindowEnd    time.Time
	MaxDuration  *time.Duration
	StartOptions []availability.Option
	EndOptions   []availability.Option
}

// TimelineRM wraps the layout result; Empty marks a day with neither
// periods nor bookings.
type TimelineRM struct {
	Date     time.Time
	Empty    bool
	Timeline timeline.Timeline
}

// RecurrenceVerdictRM partitions expanded candidates by conflict. Both
// lists preserve expansion order.
type RecurrenceVerdictRM struct {
	ValidSlots []recurrence.CandidateSlot
	Conflicts  []recurrence.CandidateSlot
}
