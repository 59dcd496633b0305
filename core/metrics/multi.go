package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordPlan(ev PlanEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDeadlineMiss forwards miss events to sinks that record them.
func (m *MultiSink) RecordDeadlineMiss(ev DeadlineMissEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(DeadlineMissRecorder); ok {
			if err := rec.RecordDeadlineMiss(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
