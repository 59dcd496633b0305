package scheduler

import (
	"testing"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

func TestStatistics_CountsAndRates(t *testing.T) {
	ps := []model.Project{
		{Name: "steady", EndDate: calendar.Date(2025, time.June, 27), RemainingDays: 10},
	}
	plan, err := New(ps, start, nil).CreateSchedule(4, MethodPaced)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	stats := plan.Statistics()
	if len(stats) != 1 {
		t.Fatalf("got %d stats entries, want 1", len(stats))
	}
	st := stats[0]
	if st.TotalSlots != len(plan.Schedule.ProjectSlots("steady")) {
		t.Fatal("total slots disagrees with the schedule")
	}
	if want := float64(st.TotalSlots) / 4; st.SlotsPerWeek != want {
		t.Fatalf("slots per week %v, want %v", st.SlotsPerWeek, want)
	}
	if st.DaysPerWeek != st.SlotsPerWeek {
		t.Fatal("one slot is one day in the full-day model")
	}
	if !st.FullyScheduled() {
		t.Fatal("10 days in 20 available weekdays must fully schedule")
	}
	if st.LastScheduled.IsZero() {
		t.Fatal("last scheduled date missing")
	}
}

func TestStatistics_FullyScheduledUsesOriginalBudget(t *testing.T) {
	// Only 20 weekdays for a 100 day budget: partially scheduled even
	// though the engine drained what it could.
	ps := []model.Project{
		{Name: "big", EndDate: calendar.Date(2026, time.June, 1), RemainingDays: 100},
	}
	plan, err := New(ps, start, nil).CreateSchedule(4, MethodPaced)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	st := plan.Statistics()[0]
	if st.TotalSlots != 20 {
		t.Fatalf("assigned %d slots, want 20", st.TotalSlots)
	}
	if st.FullyScheduled() {
		t.Fatal("partial schedule reported as full")
	}
}

func TestStatistics_IncludesRenewals(t *testing.T) {
	ps := []model.Project{{
		Name:          "contract",
		EndDate:       calendar.Date(2025, time.June, 6),
		RemainingDays: 5,
		RenewalDays:   4,
	}}
	plan, err := New(ps, start, nil).CreateSchedule(8, MethodPaced)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	stats := plan.Statistics()
	if len(stats) != 2 {
		t.Fatalf("got %d entries, want base plus renewal", len(stats))
	}
	if !stats[1].Project.IsRenewal {
		t.Fatal("second entry should be the generated renewal")
	}
	if stats[1].TotalSlots == 0 {
		t.Fatal("renewal received no work inside the horizon")
	}
}

func TestStatistics_RoundTripWithProjectSlots(t *testing.T) {
	ps := []model.Project{
		{Name: "x", EndDate: calendar.Date(2025, time.July, 11), RemainingDays: 6},
		{Name: "y", EndDate: calendar.Date(2025, time.July, 25), RemainingDays: 9},
	}
	plan, err := New(ps, start, nil).CreateSchedule(8, MethodFrontload)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	for _, st := range plan.Statistics() {
		slots := plan.Schedule.ProjectSlots(st.Project.Name)
		if len(slots) != st.TotalSlots {
			t.Fatalf("%s: stats report %d slots, schedule holds %d", st.Project.Name, st.TotalSlots, len(slots))
		}
		for _, sl := range slots {
			if sl.Project != st.Project.Name {
				t.Fatal("foreign slot in project lookup")
			}
		}
	}
}
