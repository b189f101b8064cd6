package utils

import (
	"testing"
	"time"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
}

func TestSlotStarts_FullOpenDay(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(18 * time.Hour)

	slots := SlotStarts(open, close, 60*time.Minute, 30*time.Minute, nil, d)

	// 09:00 through 17:00 every 30 minutes, last slot ending exactly 18:00.
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if !slots[0].Equal(open) {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Format("15:04"))
	}
	last := slots[len(slots)-1]
	if !last.Equal(d.Add(17 * time.Hour)) {
		t.Fatalf("expected last slot 17:00, got %s", last.Format("15:04"))
	}
	if last.Add(60 * time.Minute).After(close) {
		t.Fatalf("last slot overruns closing time")
	}
}

func TestSlotStarts_ExistingAppointmentExcludesOverlaps(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(18 * time.Hour)
	busy := []Interval{
		{Start: d.Add(10 * time.Hour), End: d.Add(11 * time.Hour)},
	}

	// 30-minute service: 09:30 ends exactly 10:00 (boundary touch, kept),
	// 10:00 and 10:30 overlap the busy hour, 11:00 starts as it ends.
	slots := SlotStarts(open, close, 30*time.Minute, 30*time.Minute, busy, d)

	want := map[string]bool{"10:00": false, "10:30": false, "09:30": true, "11:00": true}
	got := map[string]bool{"10:00": false, "10:30": false, "09:30": false, "11:00": false}
	for _, s := range slots {
		key := s.Format("15:04")
		if _, tracked := got[key]; tracked {
			got[key] = true
		}
	}
	for key, expected := range want {
		if got[key] != expected {
			t.Errorf("slot %s: included=%v, want %v", key, got[key], expected)
		}
	}
}

func TestSlotStarts_LongerServiceExcludesSpanningCandidate(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(18 * time.Hour)
	busy := []Interval{
		{Start: d.Add(10 * time.Hour), End: d.Add(11 * time.Hour)},
	}

	// 60-minute service: 09:30 spans [09:30,10:30) into the busy hour and
	// goes too; 09:00 ends exactly 10:00 and stays.
	slots := SlotStarts(open, close, 60*time.Minute, 30*time.Minute, busy, d)

	for _, s := range slots {
		if s.Equal(d.Add(9*time.Hour + 30*time.Minute)) {
			t.Fatalf("09:30 spans the busy window and must be excluded")
		}
	}
	if len(slots) == 0 || !slots[0].Equal(d.Add(9*time.Hour)) {
		t.Fatalf("expected 09:00 to remain the first slot")
	}
}

func TestSlotStarts_ExactFillSingleSlot(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(10 * time.Hour)

	slots := SlotStarts(open, close, 60*time.Minute, 30*time.Minute, nil, d)
	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 slot, got %d", len(slots))
	}
	if !slots[0].Equal(open) {
		t.Fatalf("expected slot at open, got %s", slots[0].Format("15:04"))
	}
}

func TestSlotStarts_UnalignedClose(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(10*time.Hour + 45*time.Minute)

	slots := SlotStarts(open, close, 60*time.Minute, 30*time.Minute, nil, d)
	// 09:00, 09:30 fit; 10:00 would end 11:00 > 10:45.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	last := slots[len(slots)-1]
	if !last.Equal(d.Add(9*time.Hour + 30*time.Minute)) {
		t.Fatalf("expected last slot 09:30, got %s", last.Format("15:04"))
	}
}

func TestSlotStarts_DurationExceedsWindow(t *testing.T) {
	d := day(t)
	slots := SlotStarts(d.Add(9*time.Hour), d.Add(9*time.Hour+45*time.Minute), 60*time.Minute, 30*time.Minute, nil, d)
	if slots != nil {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestSlotStarts_SkipsPastCandidates(t *testing.T) {
	d := day(t)
	open := d.Add(9 * time.Hour)
	close := d.Add(12 * time.Hour)
	now := d.Add(10*time.Hour + 1*time.Minute)

	slots := SlotStarts(open, close, 60*time.Minute, 30*time.Minute, nil, now)
	for _, s := range slots {
		if s.Before(now) {
			t.Fatalf("slot %s is in the past", s.Format("15:04"))
		}
	}
	if len(slots) != 2 { // 10:30 and 11:00
		t.Fatalf("expected 2 future slots, got %d", len(slots))
	}
}

func TestSlotStarts_BadInputs(t *testing.T) {
	d := day(t)
	if got := SlotStarts(d, d.Add(time.Hour), 0, 30*time.Minute, nil, d); got != nil {
		t.Fatalf("zero duration: expected nil, got %v", got)
	}
	if got := SlotStarts(d, d.Add(time.Hour), 30*time.Minute, 0, nil, d); got != nil {
		t.Fatalf("zero step: expected nil, got %v", got)
	}
	if got := SlotStarts(d.Add(time.Hour), d, 30*time.Minute, 30*time.Minute, nil, d); got != nil {
		t.Fatalf("inverted window: expected nil, got %v", got)
	}
}

func TestOverlapsAny_BoundaryTouchDoesNotConflict(t *testing.T) {
	d := day(t)
	busy := []Interval{{Start: d.Add(10 * time.Hour), End: d.Add(11 * time.Hour)}}

	// Ends exactly when the busy interval starts.
	if OverlapsAny(d.Add(9*time.Hour), d.Add(10*time.Hour), busy) {
		t.Fatalf("back-to-back before should not conflict")
	}
	// Starts exactly when the busy interval ends.
	if OverlapsAny(d.Add(11*time.Hour), d.Add(12*time.Hour), busy) {
		t.Fatalf("back-to-back after should not conflict")
	}
	// One minute of overlap on either side.
	if !OverlapsAny(d.Add(9*time.Hour+1*time.Minute), d.Add(10*time.Hour+1*time.Minute), busy) {
		t.Fatalf("leading overlap should conflict")
	}
	if !OverlapsAny(d.Add(10*time.Hour+59*time.Minute), d.Add(11*time.Hour+59*time.Minute), busy) {
		t.Fatalf("trailing overlap should conflict")
	}
	// Fully contained.
	if !OverlapsAny(d.Add(10*time.Hour+15*time.Minute), d.Add(10*time.Hour+30*time.Minute), busy) {
		t.Fatalf("contained interval should conflict")
	}
}
