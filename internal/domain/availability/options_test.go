//go:build unit

package availability_test

import (
	"testing"
	"time"

	"roombook/internal/domain/availability"
	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func enabledIndexes(opts []availability.Option) []int {
	var out []int
	for _, o := range opts {
		if !o.Disabled {
			out = append(out, o.PeriodIndex)
		}
	}
	return out
}

// Periods 09:00-12:00 and 13:00-17:00 with a 12:00-13:00 gap, window
// 08:00-20:00, no bookings, cap 4h.
func gapDayPeriods(t *testing.T) []schedule.DatedPeriod {
	t.Helper()
	window := availability.TimeWindow{Start: at(8, 0), End: at(20, 0)}
	return availability.Filter(datedPeriods(t,
		[2]time.Time{at(9, 0), at(12, 0)},
		[2]time.Time{at(13, 0), at(17, 0)},
	), window, nil)
}

func TestOptions_GapAndCap(t *testing.T) {
	maxDuration := durationPtr(4 * time.Hour)

	t.Run("no end chosen leaves every enabled end selectable", func(t *testing.T) {
		periods := gapDayPeriods(t)
		ends := availability.EndOptions(periods, nil, maxDuration)
		assert.Equal(t, []int{0, 1}, enabledIndexes(ends))
		assert.Equal(t, at(12, 0), ends[0].Time)
		assert.Equal(t, at(17, 0), ends[1].Time)
	})

	t.Run("start 09:00 cannot bridge the gap", func(t *testing.T) {
		periods := gapDayPeriods(t)
		start := &availability.Option{PeriodIndex: 0, Time: at(9, 0)}
		ends := availability.EndOptions(periods, start, maxDuration)
		assert.Equal(t, []int{0}, enabledIndexes(ends), "12:00 is the last reachable end")
	})

	t.Run("end 17:00 confines starts to the second block", func(t *testing.T) {
		periods := gapDayPeriods(t)
		end := &availability.Option{PeriodIndex: 1, Time: at(17, 0)}
		starts := availability.StartOptions(periods, end, maxDuration)
		assert.Equal(t, []int{1}, enabledIndexes(starts))
		assert.Equal(t, at(13, 0), starts[1].Time)
	})
}

func TestOptions_Contiguity(t *testing.T) {
	window := availability.TimeWindow{Start: at(8, 0), End: at(20, 0)}
	// Three adjacent blocks: 09-11, 11-13, 13-15.
	adjacent := func(t *testing.T, bookings []booking.Booking) []schedule.DatedPeriod {
		return availability.Filter(datedPeriods(t,
			[2]time.Time{at(9, 0), at(11, 0)},
			[2]time.Time{at(11, 0), at(13, 0)},
			[2]time.Time{at(13, 0), at(15, 0)},
		), window, bookings)
	}

	t.Run("adjacent enabled blocks are all reachable", func(t *testing.T) {
		periods := adjacent(t, nil)
		start := &availability.Option{PeriodIndex: 0, Time: at(9, 0)}
		ends := availability.EndOptions(periods, start, nil)
		assert.Equal(t, []int{0, 1, 2}, enabledIndexes(ends))

		end := &availability.Option{PeriodIndex: 2, Time: at(15, 0)}
		starts := availability.StartOptions(periods, end, nil)
		assert.Equal(t, []int{0, 1, 2}, enabledIndexes(starts))
	})

	t.Run("disabled middle block bounds the reach permanently", func(t *testing.T) {
		periods := adjacent(t, []booking.Booking{
			mustBooking(t, at(11, 30), at(12, 0), booking.StatusConfirmed),
		})
		start := &availability.Option{PeriodIndex: 0, Time: at(9, 0)}
		ends := availability.EndOptions(periods, start, nil)
		assert.Equal(t, []int{0}, enabledIndexes(ends),
			"the block past the booked one stays unreachable even though it is enabled")

		end := &availability.Option{PeriodIndex: 2, Time: at(15, 0)}
		starts := availability.StartOptions(periods, end, nil)
		assert.Equal(t, []int{2}, enabledIndexes(starts))
	})

	t.Run("duration cap bounds the forward walk", func(t *testing.T) {
		periods := adjacent(t, nil)
		start := &availability.Option{PeriodIndex: 0, Time: at(9, 0)}
		ends := availability.EndOptions(periods, start, durationPtr(4*time.Hour))
		// 09:00-13:00 is 4h, 09:00-15:00 is 6h.
		assert.Equal(t, []int{0, 1}, enabledIndexes(ends))
	})

	t.Run("duration cap bounds the backward walk", func(t *testing.T) {
		periods := adjacent(t, nil)
		end := &availability.Option{PeriodIndex: 2, Time: at(15, 0)}
		starts := availability.StartOptions(periods, end, durationPtr(4*time.Hour))
		// 11:00-15:00 is 4h, 09:00-15:00 is 6h.
		assert.Equal(t, []int{1, 2}, enabledIndexes(starts))
	})

	t.Run("options after the chosen end are disabled", func(t *testing.T) {
		periods := adjacent(t, nil)
		end := &availability.Option{PeriodIndex: 1, Time: at(13, 0)}
		starts := availability.StartOptions(periods, end, nil)
		assert.Equal(t, []int{0, 1}, enabledIndexes(starts))
	})

	t.Run("options before the chosen start are disabled", func(t *testing.T) {
		periods := adjacent(t, nil)
		start := &availability.Option{PeriodIndex: 1, Time: at(11, 0)}
		ends := availability.EndOptions(periods, start, nil)
		assert.Equal(t, []int{1, 2}, enabledIndexes(ends))
	})
}

func TestOptions_BookingSplitsDay(t *testing.T) {
	// Single period 09:00-12:00 with a confirmed booking 10:00-11:00: the
	// whole period is blocked, so no option pair can span 10:00-11:00.
	window := availability.TimeWindow{Start: at(8, 0), End: at(20, 0)}
	periods := availability.Filter(datedPeriods(t,
		[2]time.Time{at(9, 0), at(12, 0)},
	), window, []booking.Booking{
		mustBooking(t, at(10, 0), at(11, 0), booking.StatusConfirmed),
	})

	starts := availability.StartOptions(periods, nil, nil)
	ends := availability.EndOptions(periods, nil, nil)
	assert.Empty(t, enabledIndexes(starts))
	assert.Empty(t, enabledIndexes(ends))
}

func TestOptions_Symmetry(t *testing.T) {
	// Fixing a start, taking the furthest reachable end, and recomputing
	// start options from it must reproduce the original start as reachable.
	periods := availability.Filter(datedPeriods(t,
		[2]time.Time{at(9, 0), at(11, 0)},
		[2]time.Time{at(11, 0), at(13, 0)},
		[2]time.Time{at(13, 0), at(15, 0)},
	), availability.TimeWindow{Start: at(8, 0), End: at(20, 0)}, nil)
	maxDuration := durationPtr(6 * time.Hour)

	start := &availability.Option{PeriodIndex: 0, Time: at(9, 0)}
	ends := availability.EndOptions(periods, start, maxDuration)
	reachable := enabledIndexes(ends)
	require.NotEmpty(t, reachable)

	furthest := ends[reachable[len(reachable)-1]]
	starts := availability.StartOptions(periods, &furthest, maxDuration)
	assert.False(t, starts[start.PeriodIndex].Disabled)
}

func TestOptions_EmptyPeriods(t *testing.T) {
	assert.Empty(t, availability.StartOptions(nil, nil, nil))
	assert.Empty(t, availability.EndOptions(nil, nil, nil))
}

func TestOption_Equal(t *testing.T) {
	a := availability.Option{PeriodIndex: 1, Time: at(9, 0)}
	assert.True(t, a.Equal(availability.Option{PeriodIndex: 1, Time: at(9, 0), Disabled: true}),
		"equality ignores the disabled flag")
	assert.False(t, a.Equal(availability.Option{PeriodIndex: 2, Time: at(9, 0)}))
	assert.False(t, a.Equal(availability.Option{PeriodIndex: 1, Time: at(10, 0)}))
}
