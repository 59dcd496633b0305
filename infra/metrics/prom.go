package metrics

import (
	coremetrics "github.com/mgillet/paceplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	misses     *prometheus.CounterVec
	unassigned *prometheus.GaugeVec
	duration   prometheus.Histogram
}

// NewPromSink registers planner metrics on the default Prometheus
// registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of scheduling runs",
	}, []string{"method"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_deadline_misses_total",
		Help: "Deadline misses diagnosed across scheduling runs",
	}, []string{"method"})
	unassigned := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plan_unassigned_days",
		Help: "Unassigned weekdays in the most recent run",
	}, []string{"method"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_run_duration_seconds",
		Help:    "Time spent producing a schedule",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(misses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			misses = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(unassigned); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			unassigned = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, misses: misses, unassigned: unassigned, duration: duration}, nil
}

// RecordPlan increments the run counter and updates gauges.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.runs.WithLabelValues(ev.Method).Inc()
	s.unassigned.WithLabelValues(ev.Method).Set(float64(ev.Unassigned))
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordDeadlineMiss counts each diagnosed miss.
func (s *PromSink) RecordDeadlineMiss(ev coremetrics.DeadlineMissEvent) error {
	s.misses.WithLabelValues(ev.Method).Inc()
	return nil
}
