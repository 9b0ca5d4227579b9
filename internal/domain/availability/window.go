package availability

import "time"

// TimeWindow bounds the instants at which a booking may start and end
// for the current session.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// WindowFromOffset is the plain booking window: from now until now plus
// the configured offset.
func WindowFromOffset(now time.Time, offset time.Duration) TimeWindow {
	return TimeWindow{Start: now, End: now.Add(offset)}
}

// WindowFromSession clamps a session's range to the present: instants
// already in the past cannot begin or end a booking.
func WindowFromSession(now, sessionStart, sessionEnd time.Time) TimeWindow {
	w := TimeWindow{Start: sessionStart, End: sessionEnd}
	if now.After(w.Start) {
		w.Start = now
	}
	if now.After(w.End) {
		w.End = now
	}
	return w
}
