// Package recurrence generates repeated future occurrences of chosen
// time slots for the "repeat weekly" reservation flow.
package recurrence

import (
	"errors"
	"time"
)

var ErrInvalidType = errors.New("invalid recurrence type")

type Type string

const (
	TypeNone   Type = "none"
	TypeWeekly Type = "weekly"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeNone, TypeWeekly:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

// CandidateSlot is a user-proposed start/end pair, not yet tied to a
// period boundary.
type CandidateSlot struct {
	Start time.Time
	End   time.Time
}

// Expand returns the input slots plus, for weekly recurrence, every
// 7-day-shifted occurrence whose start is strictly before until. The
// originals come first in input order, then each original's occurrences
// in date order. A cutoff at or before a slot's start generates nothing
// extra for that slot.
func Expand(slots []CandidateSlot, typ Type, until time.Time) []CandidateSlot {
	expanded := make([]CandidateSlot, len(slots))
	copy(expanded, slots)
	if typ != TypeWeekly {
		return expanded
	}

	for _, slot := range slots {
		start, end := slot.Start, slot.End
		for {
			start = start.AddDate(0, 0, 7)
			end = end.AddDate(0, 0, 7)
			if !start.Before(until) {
				break
			}
			expanded = append(expanded, CandidateSlot{Start: start, End: end})
		}
	}
	return expanded
}
