package services

import (
	"testing"
	"time"

	"salonbook-backend/models"
)

func monday() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func salonWeek() models.WeekHours {
	return models.WeekHours{
		"monday":  {Open: "09:00", Close: "18:00"},
		"tuesday": {Open: "09:00", Close: "18:00"},
		"sunday":  {Open: "10:00", Close: "16:00", Closed: true},
	}
}

func TestResolveDayWindow_SalonHoursOnly(t *testing.T) {
	start, end, open, err := ResolveDayWindow(monday(), salonWeek(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("expected Monday to be open")
	}
	if start.Hour() != 9 || end.Hour() != 18 {
		t.Fatalf("unexpected window %s - %s", start.Format("15:04"), end.Format("15:04"))
	}
}

func TestResolveDayWindow_ClosedDay(t *testing.T) {
	sunday := monday().AddDate(0, 0, -1)
	_, _, open, err := ResolveDayWindow(sunday, salonWeek(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("marked-closed Sunday should not be open")
	}

	wednesday := monday().AddDate(0, 0, 2)
	_, _, open, err = ResolveDayWindow(wednesday, salonWeek(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("day absent from salon hours should not be open")
	}
}

func TestResolveDayWindow_StaffOverrideNarrows(t *testing.T) {
	override := models.WeekHours{
		"monday": {Open: "11:00", Close: "15:00"},
	}
	start, end, open, err := ResolveDayWindow(monday(), salonWeek(), &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("expected overridden Monday to be open")
	}
	if start.Hour() != 11 || end.Hour() != 15 {
		t.Fatalf("expected 11:00-15:00, got %s - %s", start.Format("15:04"), end.Format("15:04"))
	}
}

func TestResolveDayWindow_OverrideCannotExtendSalonHours(t *testing.T) {
	override := models.WeekHours{
		"monday": {Open: "07:00", Close: "22:00"},
	}
	start, end, open, err := ResolveDayWindow(monday(), salonWeek(), &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("expected Monday to be open")
	}
	if start.Hour() != 9 || end.Hour() != 18 {
		t.Fatalf("window should clamp to salon hours, got %s - %s",
			start.Format("15:04"), end.Format("15:04"))
	}
}

func TestResolveDayWindow_OverrideDayOff(t *testing.T) {
	override := models.WeekHours{
		"tuesday": {Open: "09:00", Close: "18:00"},
	}
	_, _, open, err := ResolveDayWindow(monday(), salonWeek(), &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("weekday absent from the override means the staff member is off")
	}
}

func TestResolveDayWindow_DisjointWindows(t *testing.T) {
	override := models.WeekHours{
		"monday": {Open: "19:00", Close: "21:00"},
	}
	_, _, open, err := ResolveDayWindow(monday(), salonWeek(), &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("override outside salon hours leaves no window")
	}
}

func TestResolveDayWindow_BadClockValue(t *testing.T) {
	bad := models.WeekHours{
		"monday": {Open: "9am", Close: "18:00"},
	}
	_, _, _, err := ResolveDayWindow(monday(), bad, nil)
	if err == nil {
		t.Fatalf("expected error for malformed clock value")
	}
}

func TestCacheableDateSkipsToday(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	if cacheableDate(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), now) {
		t.Fatalf("today's availability must not be cached; slots expire as time passes")
	}
	if !cacheableDate(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), now) {
		t.Fatalf("tomorrow's availability should be cacheable")
	}
	if !cacheableDate(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), now) {
		t.Fatalf("future dates should be cacheable")
	}
}
