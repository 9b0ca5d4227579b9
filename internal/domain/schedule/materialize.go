package schedule

import "time"

// Materialize binds each period to the calendar date of day, preserving
// input order. It is a pure function of (periods, day) and can be rerun
// on every recomputation without caching.
//
// A malformed list (unordered or overlapping periods) is a configuration
// bug and fails fast rather than producing a partial result.
func Materialize(periods []Period, day time.Time) ([]DatedPeriod, error) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	dated := make([]DatedPeriod, 0, len(periods))
	for i, p := range periods {
		if i > 0 {
			prev := periods[i-1]
			if p.start < prev.start {
				return nil, ErrUnorderedPeriods
			}
			if p.start < prev.end {
				return nil, ErrOverlappingPeriods
			}
		}
		iv, err := NewInterval(midnight.Add(p.start), midnight.Add(p.end))
		if err != nil {
			return nil, err
		}
		dated = append(dated, DatedPeriod{PeriodID: p.id, Interval: iv})
	}
	return dated, nil
}
