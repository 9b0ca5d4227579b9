package availability

import (
	"time"

	"roombook/internal/domain/schedule"
)

// Option is a candidate instant in the start or end picker. PeriodIndex
// is the position within the filtered period slice the instant belongs to.
type Option struct {
	PeriodIndex int
	Time        time.Time
	Disabled    bool
}

func (o Option) Equal(other Option) bool {
	return o.PeriodIndex == other.PeriodIndex && o.Time.Equal(other.Time)
}

// StartOptions computes the selectable start instants, one per period.
// With no end chosen, an option is selectable iff its period is enabled.
// With an end chosen at index e, a start at index i < e additionally
// requires every period in (i, e] to be reachable: each step enabled,
// perfectly adjacent (period end equals the next period's start), and,
// when maxDuration is set, the span from the period's start to the chosen
// end within the cap. The backward walk stops at the first period that
// fails; everything before it is unreachable for good, so the conditions
// are not re-examined past that point.
func StartOptions(periods []schedule.DatedPeriod, end *Option, maxDuration *time.Duration) []Option {
	opts := make([]Option, len(periods))
	for i, p := range periods {
		opts[i] = Option{PeriodIndex: i, Time: p.Interval.Start(), Disabled: p.Disabled}
	}
	if end == nil {
		return opts
	}

	for i := len(periods) - 1; i > end.PeriodIndex; i-- {
		opts[i].Disabled = true
	}

	i := end.PeriodIndex - 1
	for ; i >= 0; i-- {
		p := periods[i]
		if p.Disabled || !p.Interval.End().Equal(periods[i+1].Interval.Start()) {
			break // not contiguous
		}
		if maxDuration != nil && end.Time.Sub(p.Interval.Start()) > *maxDuration {
			break // exceeds the duration cap
		}
	}
	for ; i >= 0; i-- {
		opts[i].Disabled = true
	}
	return opts
}

// EndOptions is the mirror of StartOptions: seeded at period end instants
// and walked forward from the chosen start.
func EndOptions(periods []schedule.DatedPeriod, start *Option, maxDuration *time.Duration) []Option {
	opts := make([]Option, len(periods))
	for i, p := range periods {
		opts[i] = Option{PeriodIndex: i, Time: p.Interval.End(), Disabled: p.Disabled}
	}
	if start == nil {
		return opts
	}

	for i := 0; i < start.PeriodIndex; i++ {
		opts[i].Disabled = true
	}

	i := start.PeriodIndex + 1
	for ; i < len(periods); i++ {
		p := periods[i]
		if p.Disabled || !p.Interval.Start().Equal(periods[i-1].Interval.End()) {
			break // not contiguous
		}
		if maxDuration != nil && p.Interval.End().Sub(start.Time) > *maxDuration {
			break // exceeds the duration cap
		}
	}
	for ; i < len(periods); i++ {
		opts[i].Disabled = true
	}
	return opts
}
