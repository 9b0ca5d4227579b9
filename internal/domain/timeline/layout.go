// Package timeline lays a day's periods and bookings out as proportional
// vertical bands over a shared time axis, for the room widget view.
package timeline

import (
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
)

type BandKind string

const (
	BandPeriod  BandKind = "period"
	BandBooking BandKind = "booking"
	// BandGap marks closed time between periods (or before the first /
	// after the last one). Gaps have no source.
	BandGap BandKind = "gap"
)

// Band is one vertical segment. Offset and height are percentages of the
// total axis duration.
type Band struct {
	Kind      BandKind
	SourceID  uuid.UUID
	Status    booking.Status // booking bands only
	Start     time.Time
	End       time.Time
	OffsetPct float64
	HeightPct float64
}

// Timeline holds the two band sequences laid out independently over one
// axis: periods show the operating-hours structure, bookings overlay them
// at their own offsets.
type Timeline struct {
	AxisStart time.Time
	AxisEnd   time.Time
	Periods   []Band
	Bookings  []Band
}

// Layout computes the timeline for one room and day. Periods and bookings
// must each be sorted by start; blocking bookings are expected to be
// pairwise non-overlapping (server-enforced), overlapping ones will
// visually stack. ok is false when both inputs are empty and there is no
// axis to draw.
func Layout(periods []schedule.DatedPeriod, bookings []booking.Booking) (tl Timeline, ok bool) {
	axisStart, axisEnd, ok := axisBounds(periods, bookings)
	if !ok {
		return Timeline{}, false
	}

	tl = Timeline{AxisStart: axisStart, AxisEnd: axisEnd}
	total := axisEnd.Sub(axisStart)
	pct := func(start, end time.Time) float64 {
		return 100 * float64(end.Sub(start)) / float64(total)
	}

	pos := 0.0
	for i, p := range periods {
		gapStart := axisStart
		if i > 0 {
			gapStart = periods[i-1].Interval.End()
		}
		if gapStart.Before(p.Interval.Start()) {
			h := pct(gapStart, p.Interval.Start())
			tl.Periods = append(tl.Periods, Band{
				Kind: BandGap, Start: gapStart, End: p.Interval.Start(),
				OffsetPct: pos, HeightPct: h,
			})
			pos += h
		}
		h := pct(p.Interval.Start(), p.Interval.End())
		tl.Periods = append(tl.Periods, Band{
			Kind: BandPeriod, SourceID: p.PeriodID,
			Start: p.Interval.Start(), End: p.Interval.End(),
			OffsetPct: pos, HeightPct: h,
		})
		pos += h
		if i == len(periods)-1 && p.Interval.End().Before(axisEnd) {
			tl.Periods = append(tl.Periods, Band{
				Kind: BandGap, Start: p.Interval.End(), End: axisEnd,
				OffsetPct: pos, HeightPct: pct(p.Interval.End(), axisEnd),
			})
		}
	}

	pos = 0.0
	for i, b := range bookings {
		gapStart := axisStart
		if i > 0 {
			gapStart = bookings[i-1].Interval().End()
		}
		if gapStart.Before(b.Interval().Start()) {
			pos += pct(gapStart, b.Interval().Start())
		}
		h := pct(b.Interval().Start(), b.Interval().End())
		tl.Bookings = append(tl.Bookings, Band{
			Kind: BandBooking, SourceID: b.ID(), Status: b.Status(),
			Start: b.Interval().Start(), End: b.Interval().End(),
			OffsetPct: pos, HeightPct: h,
		})
		pos += h
	}

	return tl, true
}

// Bands returns period and gap bands followed by booking bands.
func (tl Timeline) Bands() []Band {
	out := make([]Band, 0, len(tl.Periods)+len(tl.Bookings))
	out = append(out, tl.Periods...)
	out = append(out, tl.Bookings...)
	return out
}

func axisBounds(periods []schedule.DatedPeriod, bookings []booking.Booking) (time.Time, time.Time, bool) {
	switch {
	case len(periods) > 0 && len(bookings) > 0:
		start := periods[0].Interval.Start()
		if bookings[0].Interval().Start().Before(start) {
			start = bookings[0].Interval().Start()
		}
		end := periods[len(periods)-1].Interval.End()
		if bookings[len(bookings)-1].Interval().End().After(end) {
			end = bookings[len(bookings)-1].Interval().End()
		}
		return start, end, true
	case len(periods) > 0:
		return periods[0].Interval.Start(), periods[len(periods)-1].Interval.End(), true
	case len(bookings) > 0:
		return bookings[0].Interval().Start(), bookings[len(bookings)-1].Interval().End(), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
