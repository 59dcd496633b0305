package scheduler

import (
	"testing"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

func TestFrontload_ContiguousBlocks(t *testing.T) {
	// Equal priority and deadline: names break the tie, so "apple" gets
	// five consecutive slots before "pear" sees its first.
	end := calendar.Date(2025, time.July, 31)
	ps := []model.Project{
		{Name: "pear", EndDate: end, RemainingDays: 5},
		{Name: "apple", EndDate: end, RemainingDays: 5},
	}
	plan, err := New(ps, start, nil).CreateSchedule(3, MethodFrontload)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	var seq []string
	for _, sl := range plan.Schedule.Slots {
		if sl.Assigned() {
			seq = append(seq, sl.Project)
		}
	}
	if len(seq) != 10 {
		t.Fatalf("assigned %d slots, want 10", len(seq))
	}
	for i, name := range seq {
		want := "apple"
		if i >= 5 {
			want = "pear"
		}
		if name != want {
			t.Fatalf("slot %d went to %s, want %s (no interleaving)", i, name, want)
		}
	}
}

func TestFrontload_PriorityBeforeDeadline(t *testing.T) {
	ps := []model.Project{
		{Name: "urgent", EndDate: calendar.Date(2025, time.June, 13), RemainingDays: 3, Priority: 0},
		{Name: "flagship", EndDate: calendar.Date(2025, time.December, 31), RemainingDays: 3, Priority: 5},
	}
	plan, err := New(ps, start, nil).CreateSchedule(2, MethodFrontload)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	var first string
	for _, sl := range plan.Schedule.Slots {
		if sl.Assigned() {
			first = sl.Project
			break
		}
	}
	if first != "flagship" {
		t.Fatalf("first slot went to %q; priority must outrank deadline", first)
	}
}

func TestFrontload_FutureStartSkippedNotDropped(t *testing.T) {
	// The top-ordered project starts in week two. Until then the next
	// project fills the days, but once the start arrives the cursor has
	// not moved past it.
	ps := []model.Project{
		{Name: "first", StartDate: calendar.Date(2025, time.June, 9), EndDate: calendar.Date(2025, time.July, 31), RemainingDays: 3, Priority: 2},
		{Name: "filler", EndDate: calendar.Date(2025, time.July, 31), RemainingDays: 20},
	}
	plan, err := New(ps, start, nil).CreateSchedule(3, MethodFrontload)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	// Week one: all filler. Monday June 9: "first" takes over.
	for _, sl := range plan.Schedule.Slots {
		switch {
		case sl.Date.Before(calendar.Date(2025, time.June, 9)):
			if sl.Project != "filler" {
				t.Fatalf("%v: got %q, want filler before the delayed start", sl.Date, sl.Project)
			}
		case sl.Date.Before(calendar.Date(2025, time.June, 12)):
			if sl.Project != "first" {
				t.Fatalf("%v: got %q, want the delayed project once started", sl.Date, sl.Project)
			}
		default:
			if sl.Assigned() && sl.Project != "filler" {
				t.Fatalf("%v: got %q, want filler after the block completes", sl.Date, sl.Project)
			}
		}
	}
}

func TestFrontload_MissDiagnostic(t *testing.T) {
	p := model.Project{
		Name:          "overflow",
		EndDate:       calendar.Date(2025, time.June, 13), // inside horizon
		RemainingDays: 30,
	}
	plan, err := New([]model.Project{p}, start, nil).CreateSchedule(2, MethodFrontload)
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if got := plan.Schedule.AssignedCount(); got != 10 {
		t.Fatalf("assigned %d slots, want 10", got)
	}
	if len(plan.Misses) != 1 || plan.Misses[0].DaysShort != 20 {
		t.Fatalf("unexpected misses: %+v", plan.Misses)
	}
}
