package model

import (
	"testing"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
)

func testSchedule() *Schedule {
	mon := calendar.Date(2025, time.June, 2)
	return &Schedule{
		StartDate: mon,
		EndDate:   mon.AddDate(0, 0, 7),
		Slots: []ScheduledSlot{
			{Date: mon, Project: "alpha"},
			{Date: mon.AddDate(0, 0, 1), Project: "beta"},
			{Date: mon.AddDate(0, 0, 2)},
			{Date: mon.AddDate(0, 0, 3), Project: "alpha"},
			{Date: mon.AddDate(0, 0, 4)},
		},
	}
}

func TestSchedule_ProjectSlots(t *testing.T) {
	s := testSchedule()
	got := s.ProjectSlots("alpha")
	if len(got) != 2 {
		t.Fatalf("alpha slots: got %d, want 2", len(got))
	}
	if !got[0].Date.Before(got[1].Date) {
		t.Fatal("slots out of date order")
	}
	if len(s.ProjectSlots("missing")) != 0 {
		t.Fatal("unknown project returned slots")
	}
}

func TestSchedule_SlotsForDate(t *testing.T) {
	s := testSchedule()
	day := calendar.Date(2025, time.June, 3)
	got := s.SlotsForDate(day)
	if len(got) != 1 || got[0].Project != "beta" {
		t.Fatalf("unexpected slots for %v: %+v", day, got)
	}
	if len(s.SlotsForDate(calendar.Date(2025, time.June, 7))) != 0 {
		t.Fatal("weekend date returned a slot")
	}
}

func TestSchedule_LastWorkDate(t *testing.T) {
	s := testSchedule()
	want := calendar.Date(2025, time.June, 5)
	if got := s.LastWorkDate(); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	empty := &Schedule{Slots: []ScheduledSlot{{Date: s.StartDate}}}
	if !empty.LastWorkDate().IsZero() {
		t.Fatal("empty schedule reported a work date")
	}
}

func TestSchedule_Counts(t *testing.T) {
	s := testSchedule()
	if s.AssignedCount() != 3 {
		t.Fatalf("assigned: got %d, want 3", s.AssignedCount())
	}
	if s.UnassignedCount() != 2 {
		t.Fatalf("unassigned: got %d, want 2", s.UnassignedCount())
	}
}

func TestSchedule_UniqueDates(t *testing.T) {
	s := testSchedule()
	dates := s.UniqueDates()
	if len(dates) != 5 {
		t.Fatalf("got %d dates, want 5", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Fatal("dates not strictly ascending")
		}
	}
}
