package scheduler

import (
	"sort"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// frontload concentrates one project's entire remaining budget into a
// contiguous run before moving to the next. Projects are visited in a
// single static order: priority descending, deadline ascending, larger
// budgets first, name last for determinism. A project whose start date
// is still in the future is skipped for the day without giving up its
// place in the order.
func (s *Scheduler) frontload(projects []model.Project, numWeeks int) *Plan {
	states := newRunStates(projects, s.start)
	sched := &model.Schedule{StartDate: s.start, EndDate: s.horizonEnd(numWeeks)}

	order := make([]*runState, len(states))
	for i := range states {
		order[i] = &states[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if !a.end.Equal(b.end) {
			return a.end.Before(b.end)
		}
		if a.remaining != b.remaining {
			return a.remaining > b.remaining
		}
		return a.name < b.name
	})

	cursor := 0
	for off := 0; off < numWeeks*7; off++ {
		day := s.start.AddDate(0, 0, off)
		if !calendar.IsWorkday(day) {
			continue
		}
		for cursor < len(order) && order[cursor].remaining <= 0 {
			cursor++
		}

		slot := model.ScheduledSlot{Date: day}
		for j := cursor; j < len(order); j++ {
			st := order[j]
			if st.remaining <= 0 || day.Before(st.start) {
				continue
			}
			slot.Project = st.name
			st.assign()
			break
		}
		sched.Slots = append(sched.Slots, slot)
	}

	return &Plan{
		Schedule: sched,
		Projects: projects,
		Misses:   collectMisses(states, sched),
		Method:   MethodFrontload,
		NumWeeks: numWeeks,
	}
}
