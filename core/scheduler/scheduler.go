package scheduler

import (
	"fmt"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/logger"
	"github.com/mgillet/paceplan/core/model"
)

// Method selects the allocation strategy.
type Method string

const (
	// MethodPaced interleaves projects using pacing credits so each
	// budget is spread evenly toward its deadline.
	MethodPaced Method = "paced"
	// MethodFrontload drains one project's budget before moving to the
	// next, ordered by priority then deadline.
	MethodFrontload Method = "frontload"
)

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodPaced, MethodFrontload:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown scheduling method %q: use %q or %q", s, MethodPaced, MethodFrontload)
}

// DeadlineMiss reports a project whose deadline falls inside the horizon
// but whose budget could not be fully placed. It is a diagnostic, not an
// error: callers decide how strict to be.
type DeadlineMiss struct {
	Project      string    `json:"project"`
	DaysShort    int       `json:"days_short"`
	LastAssigned time.Time `json:"last_assigned,omitempty"` // zero when never assigned
}

// Plan is the result of one scheduling run: the schedule itself, the
// expanded working project set (base projects plus generated renewals)
// and any deadline-miss diagnostics. Statistics are derived from the
// Plan so they always reflect the same project set the allocator used.
type Plan struct {
	Schedule *model.Schedule
	Projects []model.Project
	Misses   []DeadlineMiss
	Method   Method
	NumWeeks int
}

// Scheduler plans work for a fixed project list from a fixed start date.
// It holds no mutable run state: each CreateSchedule call derives a
// fresh Plan, so a single instance can serve repeated runs as long as
// calls are serialized by the caller.
type Scheduler struct {
	projects []model.Project
	start    time.Time
	log      logger.Logger
}

// New returns a Scheduler for the given projects starting at start. The
// start date must be supplied by the caller; the engine never reads the
// wall clock.
func New(projects []model.Project, start time.Time, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop{}
	}
	return &Scheduler{projects: projects, start: calendar.Day(start), log: log}
}

// CreateSchedule walks every weekday of the numWeeks horizon and assigns
// at most one project per day according to the chosen method. Renewal
// projects are regenerated on every call.
func (s *Scheduler) CreateSchedule(numWeeks int, method Method) (*Plan, error) {
	if numWeeks <= 0 {
		return nil, fmt.Errorf("planning horizon must be positive, got %d weeks", numWeeks)
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	for _, p := range s.projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid project: %w", err)
		}
	}

	projects := expandRenewals(s.projects, s.start, numWeeks)
	s.log.Debugf("scheduling %d projects (%d renewals) over %d weeks with %s",
		len(projects), len(projects)-len(s.projects), numWeeks, method)

	var plan *Plan
	switch method {
	case MethodPaced:
		plan = s.paced(projects, numWeeks)
	case MethodFrontload:
		plan = s.frontload(projects, numWeeks)
	}
	for _, m := range plan.Misses {
		s.log.Warnf("project %s misses its deadline by %d days", m.Project, m.DaysShort)
	}
	return plan, nil
}

// horizonEnd returns the exclusive end of the planning horizon.
func (s *Scheduler) horizonEnd(numWeeks int) time.Time {
	return s.start.AddDate(0, 0, numWeeks*7)
}

// collectMisses scans the final run states for projects whose deadline
// lies inside the horizon but whose budget was not exhausted.
func collectMisses(states []runState, sched *model.Schedule) []DeadlineMiss {
	var misses []DeadlineMiss
	for i := range states {
		st := &states[i]
		if st.remaining <= 0 {
			continue
		}
		if st.end.Before(sched.StartDate) || !st.end.Before(sched.EndDate) {
			continue
		}
		misses = append(misses, DeadlineMiss{
			Project:      st.name,
			DaysShort:    st.remaining,
			LastAssigned: sched.ProjectLastDate(st.name),
		})
	}
	return misses
}
