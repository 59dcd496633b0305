package scheduler

import (
	"sort"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// paced walks every weekday of the horizon and applies a strict rule
// chain to pick at most one project per day:
//
//  1. must-do: a project needing every remaining workday to finish on
//     time is selected immediately;
//  2. cumulative feasibility: the earliest deadline group whose total
//     remaining work meets or exceeds its available workdays is forced;
//  3. pacing credit: the project with the highest positive credit;
//  4. otherwise the day stays unassigned, preserving future allowance.
//
// The chain order is part of the contract: reordering changes output.
func (s *Scheduler) paced(projects []model.Project, numWeeks int) *Plan {
	states := newRunStates(projects, s.start)
	sched := &model.Schedule{StartDate: s.start, EndDate: s.horizonEnd(numWeeks)}

	for off := 0; off < numWeeks*7; off++ {
		day := s.start.AddDate(0, 0, off)
		if !calendar.IsWorkday(day) {
			continue
		}

		var active []*runState
		for i := range states {
			st := &states[i]
			if st.active(day) {
				st.credit += st.rate
				active = append(active, st)
			}
		}

		slot := model.ScheduledSlot{Date: day}
		if st := selectPaced(day, active); st != nil {
			slot.Project = st.name
			st.assign()
		}
		sched.Slots = append(sched.Slots, slot)
	}

	return &Plan{
		Schedule: sched,
		Projects: projects,
		Misses:   collectMisses(states, sched),
		Method:   MethodPaced,
		NumWeeks: numWeeks,
	}
}

// selectPaced applies the rule chain to the day's active projects.
func selectPaced(day time.Time, active []*runState) *runState {
	if len(active) == 0 {
		return nil
	}

	var mustDo []*runState
	for _, st := range active {
		if calendar.CountWorkdays(day, st.end) == st.remaining {
			mustDo = append(mustDo, st)
		}
	}
	if len(mustDo) > 0 {
		return pickMin(mustDo, func(a, b *runState) bool { return forcedLess(day, a, b) })
	}

	if forced := feasibilityGroup(day, active); len(forced) > 0 {
		return pickMin(forced, func(a, b *runState) bool { return forcedLess(day, a, b) })
	}

	var best *runState
	for _, st := range active {
		if st.credit <= creditEpsilon {
			continue
		}
		if best == nil || pacingLess(st, best) {
			best = st
		}
	}
	return best
}

// feasibilityGroup checks each distinct deadline in ascending order: the
// first whose cumulative remaining work meets or exceeds the workdays
// left until it determines the forced set for the day.
func feasibilityGroup(day time.Time, active []*runState) []*runState {
	deadlines := make([]time.Time, 0, len(active))
	for _, st := range active {
		dup := false
		for _, d := range deadlines {
			if d.Equal(st.end) {
				dup = true
				break
			}
		}
		if !dup {
			deadlines = append(deadlines, st.end)
		}
	}
	sort.Slice(deadlines, func(i, j int) bool { return deadlines[i].Before(deadlines[j]) })

	for _, d := range deadlines {
		available := calendar.CountWorkdays(day, d)
		required := 0
		var group []*runState
		for _, st := range active {
			if !st.end.After(d) {
				required += st.remaining
				group = append(group, st)
			}
		}
		if required >= available {
			return group
		}
	}
	return nil
}
