// Package metrics defines the observability events emitted by the
// planner and the sink interfaces that record them. Concrete sinks
// live under infra/metrics and register themselves with the factory.
package metrics
