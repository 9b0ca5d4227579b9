// Package availability decides which opening periods of a day can be
// booked, and which start/end instants a user may still pick once the
// complementary endpoint is chosen.
package availability

import (
	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"
)

// Filter flags each dated period as disabled when it is not fully inside
// the window or when any blocking booking overlaps it. Each period is
// judged on its own; cross-period contiguity is the option generator's
// concern.
//
// The input slice is not mutated; callers share period snapshots between
// the start-option and end-option computations.
func Filter(periods []schedule.DatedPeriod, window TimeWindow, bookings []booking.Booking) []schedule.DatedPeriod {
	windowIv, err := schedule.NewInterval(window.Start, window.End)
	hasWindow := err == nil

	filtered := make([]schedule.DatedPeriod, len(periods))
	for i, p := range periods {
		p.Disabled = !hasWindow || !windowIv.Contains(p.Interval) || anyBlocks(bookings, p.Interval)
		filtered[i] = p
	}
	return filtered
}

func anyBlocks(bookings []booking.Booking, iv schedule.Interval) bool {
	for _, b := range bookings {
		if b.Blocks() && b.Interval().Overlaps(iv) {
			return true
		}
	}
	return false
}
