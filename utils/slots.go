package utils

import "time"

// Interval is a half-open busy window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// SlotStarts returns candidate start times within [windowStart, windowEnd)
// where a booking of the given duration fits entirely before windowEnd and
// overlaps none of the busy intervals. Candidates are spaced step apart
// starting at windowStart; candidates starting before now are skipped.
//
// All times are expected to be in the same location.
func SlotStarts(windowStart, windowEnd time.Time, duration, step time.Duration, busy []Interval, now time.Time) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}
	if !windowEnd.After(windowStart) {
		return nil
	}
	if windowStart.Add(duration).After(windowEnd) {
		return nil
	}

	var slots []time.Time
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
		if t.Before(now) {
			continue
		}
		if !OverlapsAny(t, t.Add(duration), busy) {
			slots = append(slots, t)
		}
	}
	return slots
}

// OverlapsAny reports whether [start, end) intersects any busy interval.
// Half-open semantics: back-to-back windows touching at a boundary do not
// conflict.
func OverlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
