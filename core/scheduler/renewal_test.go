package scheduler

import (
	"testing"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

func TestExpandRenewals_ExactDates(t *testing.T) {
	// Deadline Tuesday June 3: the renewal starts June 4 and runs one
	// year with its own budget.
	base := []model.Project{{
		Name:          "support",
		StartDate:     start,
		EndDate:       calendar.Date(2025, time.June, 3),
		RemainingDays: 2,
		RenewalDays:   3,
		Priority:      1,
		Probability:   0.9,
	}}
	all := expandRenewals(base, start, 4)
	if len(all) != 2 {
		t.Fatalf("got %d projects, want base plus renewal", len(all))
	}
	r := all[1]
	if r.Name != "support (Renewal)" {
		t.Fatalf("renewal name %q", r.Name)
	}
	if want := calendar.Date(2025, time.June, 4); !r.StartDate.Equal(want) {
		t.Fatalf("renewal start %v, want %v", r.StartDate, want)
	}
	if want := calendar.Date(2026, time.June, 4); !r.EndDate.Equal(want) {
		t.Fatalf("renewal end %v, want %v", r.EndDate, want)
	}
	if r.RemainingDays != 3 {
		t.Fatalf("renewal budget %v, want 3", r.RemainingDays)
	}
	if !r.IsRenewal || r.ParentName != "support" {
		t.Fatalf("renewal lineage not set: %+v", r)
	}
	if r.RenewalDays != 0 {
		t.Fatal("renewals must not chain")
	}
	if r.Priority != 1 || r.Probability != 0.9 {
		t.Fatal("renewal must inherit priority and probability")
	}
}

func TestExpandRenewals_BeyondHorizonSkipped(t *testing.T) {
	base := []model.Project{{
		Name:          "faraway",
		EndDate:       calendar.Date(2026, time.June, 1),
		RemainingDays: 2,
		RenewalDays:   5,
	}}
	if all := expandRenewals(base, start, 4); len(all) != 1 {
		t.Fatalf("renewal starting beyond the horizon must not be generated, got %d projects", len(all))
	}
}

func TestExpandRenewals_LagShiftsStart(t *testing.T) {
	base := []model.Project{{
		Name:           "maintenance",
		EndDate:        calendar.Date(2025, time.June, 3),
		RemainingDays:  1,
		RenewalDays:    2,
		RenewalLagDays: 10,
	}}
	all := expandRenewals(base, start, 8)
	if len(all) != 2 {
		t.Fatalf("got %d projects, want 2", len(all))
	}
	if want := calendar.Date(2025, time.June, 14); !all[1].StartDate.Equal(want) {
		t.Fatalf("lagged renewal start %v, want %v", all[1].StartDate, want)
	}
}

func TestExpandRenewals_NotPersistedOnScheduler(t *testing.T) {
	base := []model.Project{{
		Name:          "support",
		EndDate:       calendar.Date(2025, time.June, 3),
		RemainingDays: 2,
		RenewalDays:   3,
	}}
	s := New(base, start, nil)
	plan, err := s.CreateSchedule(4, MethodPaced)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if len(plan.Projects) != 2 {
		t.Fatalf("plan working set has %d projects, want 2", len(plan.Projects))
	}
	// A second run regenerates renewals from the same base list.
	again, err := s.CreateSchedule(4, MethodPaced)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(again.Projects) != 2 {
		t.Fatalf("renewals leaked into the base list: %d projects", len(again.Projects))
	}
}
