package metrics

import "time"

// PlanEvent summarizes one completed scheduling run.
type PlanEvent struct {
	RunID      string
	Method     string
	NumWeeks   int
	Projects   int
	Assigned   int
	Unassigned int
	Misses     int
	Duration   time.Duration
	Time       time.Time
}

// MetricsSink records scheduling runs for observability purposes.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
}

// DeadlineMissEvent captures one project falling short of its deadline.
type DeadlineMissEvent struct {
	Project   string
	DaysShort int
	Method    string
	Time      time.Time
}

// DeadlineMissRecorder records deadline-miss diagnostics. Sinks that do
// not implement it simply skip those events.
type DeadlineMissRecorder interface {
	RecordDeadlineMiss(ev DeadlineMissEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error                 { return nil }
func (NopSink) RecordDeadlineMiss(DeadlineMissEvent) error { return nil }
