package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestWeekHoursScanRoundTrip(t *testing.T) {
	hours := WeekHours{
		"monday": {Open: "09:00", Close: "18:00"},
		"sunday": {Open: "10:00", Close: "19:00", Closed: true},
	}

	value, err := hours.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var scanned WeekHours
	if err := scanned.Scan(value.([]byte)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if scanned["monday"].Open != "09:00" || scanned["monday"].Close != "18:00" {
		t.Fatalf("monday hours lost in round trip: %+v", scanned["monday"])
	}
	if !scanned["sunday"].Closed {
		t.Fatalf("closed flag lost in round trip")
	}
}

func TestWeekHoursScanRejectsNonBytes(t *testing.T) {
	var w WeekHours
	if err := w.Scan("not bytes"); err == nil {
		t.Fatalf("expected error for non-[]byte input")
	}
}

func TestForWeekday(t *testing.T) {
	hours := WeekHours{
		"monday": {Open: "09:00", Close: "18:00"},
		"sunday": {Open: "10:00", Close: "19:00", Closed: true},
	}

	if d, ok := hours.ForWeekday(time.Monday); !ok || d.Open != "09:00" {
		t.Fatalf("expected open Monday, got ok=%v d=%+v", ok, d)
	}
	if _, ok := hours.ForWeekday(time.Sunday); ok {
		t.Fatalf("closed day should report ok=false")
	}
	if _, ok := hours.ForWeekday(time.Tuesday); ok {
		t.Fatalf("absent day should report ok=false")
	}
}

func TestDefaultWeekHoursCoversWholeWeek(t *testing.T) {
	hours := DefaultWeekHours()

	raw, err := json.Marshal(hours)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected non-empty json")
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		key := strings.ToLower(d.String())
		if _, exists := hours[key]; !exists {
			t.Errorf("missing weekday %s", key)
		}
	}
}
