package utils

import (
	"testing"
	"time"
)

func TestBeginningAndEndOfDay(t *testing.T) {
	loc := time.UTC
	ts := time.Date(2026, 3, 2, 14, 37, 12, 0, loc)

	start := BeginningOfDay(ts)
	if !start.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected day start: %s", start)
	}

	end := EndOfDay(ts)
	if !end.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected day end: %s", end)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", d.Weekday())
	}

	for _, bad := range []string{"", "02-03-2026", "2026/03/02", "2026-13-40"} {
		if _, err := ParseDate(bad, time.UTC); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestAtClock(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := AtClock(d, "09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d.Add(9*time.Hour + 30*time.Minute)) {
		t.Fatalf("unexpected time: %s", got)
	}

	if _, err := AtClock(d, "9:30pm"); err == nil {
		t.Fatalf("expected error for non-24h format")
	}
	if _, err := AtClock(d, "25:00"); err == nil {
		t.Fatalf("expected error for out-of-range hour")
	}
}
