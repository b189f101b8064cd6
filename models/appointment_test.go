package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusPending, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusNoShow, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusConfirmed, false},
		{StatusBlocked, StatusCancelled, true},
		{StatusBlocked, StatusCompleted, false},
	}

	for _, tc := range cases {
		a := Appointment{Status: tc.from}
		if got := a.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCountsForConflicts(t *testing.T) {
	blocking := []AppointmentStatus{
		StatusConfirmed, StatusPending, StatusInProgress,
		StatusCompleted, StatusNoShow, StatusBlocked,
	}
	for _, s := range blocking {
		a := Appointment{Status: s}
		if !a.CountsForConflicts() {
			t.Errorf("status %s should count for conflicts", s)
		}
	}

	cancelled := Appointment{Status: StatusCancelled}
	if cancelled.CountsForConflicts() {
		t.Errorf("cancelled appointments should not count for conflicts")
	}
}
