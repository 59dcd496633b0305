package scheduler

import (
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// creditEpsilon guards the pacing rule against floating point residue: a
// project only qualifies once its accumulated credit clearly exceeds zero.
const creditEpsilon = 1e-9

// runState is the per-project mutable state of one scheduling run. The
// caller's Project values are never touched; identity is the project
// name, which is unique within a run.
type runState struct {
	name     string
	priority int
	start    time.Time // effective start, never before the horizon start
	end      time.Time // deadline, inclusive

	remaining int     // whole workdays left to place
	rate      float64 // pacing credit earned per active weekday
	credit    float64 // accumulated unspent pacing credit
}

// newRunStates builds the working state for the expanded project list.
// The pacing rate is fixed up front: remaining work divided by the
// workdays between the later of horizon start and project start and the
// deadline, so an uninterrupted project lands exactly on its deadline.
func newRunStates(projects []model.Project, horizonStart time.Time) []runState {
	states := make([]runState, len(projects))
	for i, p := range projects {
		st := runState{
			name:      p.Name,
			priority:  p.Priority,
			start:     calendar.MaxDay(p.EffectiveStart(horizonStart), horizonStart),
			end:       calendar.Day(p.EndDate),
			remaining: p.SlotsRemaining(),
		}
		total := calendar.CountWorkdays(calendar.MaxDay(horizonStart, st.start), st.end)
		if st.remaining > 0 && total > 0 {
			st.rate = float64(st.remaining) / float64(total)
		}
		states[i] = st
	}
	return states
}

// active reports whether the project can receive work on day.
func (st *runState) active(day time.Time) bool {
	return st.remaining > 0 && !day.Before(st.start) && !day.After(st.end)
}

// assign books one day of work.
func (st *runState) assign() {
	st.remaining--
	st.credit -= 1.0
}

// forcedLess orders candidates within a forced set: smallest slack
// (workdays left minus remaining work) first, then earliest deadline,
// then highest priority, then name. The order is total, which keeps
// runs deterministic.
func forcedLess(day time.Time, a, b *runState) bool {
	sa := calendar.CountWorkdays(day, a.end) - a.remaining
	sb := calendar.CountWorkdays(day, b.end) - b.remaining
	if sa != sb {
		return sa < sb
	}
	if !a.end.Equal(b.end) {
		return a.end.Before(b.end)
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.name < b.name
}

// pacingLess orders candidates for the pacing rule: highest credit
// first, then earliest deadline, then highest priority, then name.
func pacingLess(a, b *runState) bool {
	if a.credit != b.credit {
		return a.credit > b.credit
	}
	if !a.end.Equal(b.end) {
		return a.end.Before(b.end)
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.name < b.name
}

// pickMin returns the least element of states under less.
func pickMin(states []*runState, less func(a, b *runState) bool) *runState {
	best := states[0]
	for _, st := range states[1:] {
		if less(st, best) {
			best = st
		}
	}
	return best
}
