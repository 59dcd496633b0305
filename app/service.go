// Package app wires configuration, storage, metrics, and the engine
// into the planning service the CLI talks to.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgillet/paceplan/config"
	"github.com/mgillet/paceplan/core/analysis"
	coremetrics "github.com/mgillet/paceplan/core/metrics"
	"github.com/mgillet/paceplan/core/scheduler"
	"github.com/mgillet/paceplan/infra/history"
	"github.com/mgillet/paceplan/infra/logger"
	_ "github.com/mgillet/paceplan/infra/metrics" // register metrics sinks
	"github.com/mgillet/paceplan/infra/projects"
)

// Service orchestrates planning runs: it loads the inventory, runs the
// engine, and records the outcome.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	sink    coremetrics.MetricsSink
	history history.Store
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	return &Service{
		cfg:     cfg,
		log:     logger.New("service"),
		sink:    sink,
		history: store,
	}, nil
}

// PlanOptions override configuration defaults for a single run.
type PlanOptions struct {
	Weeks          int
	Method         string
	MinProbability float64 // negative means use the configured value
	Today          time.Time
}

// Plan runs the engine over the configured inventory and records the
// outcome in history and metrics. The returned plan is ready for
// rendering or export.
func (s *Service) Plan(ctx context.Context, opts PlanOptions) (*scheduler.Plan, error) {
	weeks := opts.Weeks
	if weeks <= 0 {
		weeks = s.cfg.Horizon.Weeks
	}
	methodName := opts.Method
	if methodName == "" {
		methodName = s.cfg.Horizon.Method
	}
	method, err := scheduler.ParseMethod(methodName)
	if err != nil {
		return nil, err
	}
	minProb := opts.MinProbability
	if minProb < 0 {
		minProb = s.cfg.MinProb()
	}
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	all, err := projects.Load(s.cfg.ProjectsFile)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	kept := analysis.FilterByProbability(all, minProb)
	if dropped := len(all) - len(kept); dropped > 0 {
		s.log.Infof("filtered %d speculative project(s) below probability %.2f", dropped, minProb)
	}

	started := time.Now()
	plan, err := scheduler.New(kept, today, s.log).CreateSchedule(weeks, method)
	if err != nil {
		return nil, err
	}
	s.record(ctx, plan, time.Since(started))
	return plan, nil
}

// record persists the run summary. Failures are logged, not returned:
// a produced plan is still useful when bookkeeping is down.
func (s *Service) record(ctx context.Context, plan *scheduler.Plan, took time.Duration) {
	runID := uuid.NewString()
	now := time.Now()

	rec := history.Record{
		ID:         runID,
		Timestamp:  now,
		Method:     string(plan.Method),
		NumWeeks:   plan.NumWeeks,
		Projects:   len(plan.Projects),
		Assigned:   plan.Schedule.AssignedCount(),
		Unassigned: plan.Schedule.UnassignedCount(),
		Misses:     plan.Misses,
		Stats:      plan.Statistics(),
	}
	if err := s.history.Append(ctx, rec); err != nil {
		s.log.Errorf("history append: %v", err)
	}

	ev := coremetrics.PlanEvent{
		RunID:      runID,
		Method:     string(plan.Method),
		NumWeeks:   plan.NumWeeks,
		Projects:   len(plan.Projects),
		Assigned:   rec.Assigned,
		Unassigned: rec.Unassigned,
		Misses:     len(plan.Misses),
		Duration:   took,
		Time:       now,
	}
	if err := s.sink.RecordPlan(ev); err != nil {
		s.log.Errorf("metrics sink: %v", err)
	}
	if recorder, ok := s.sink.(coremetrics.DeadlineMissRecorder); ok {
		for _, m := range plan.Misses {
			miss := coremetrics.DeadlineMissEvent{
				Project:   m.Project,
				DaysShort: m.DaysShort,
				Method:    string(plan.Method),
				Time:      now,
			}
			if err := recorder.RecordDeadlineMiss(miss); err != nil {
				s.log.Errorf("metrics sink: %v", err)
			}
		}
	}
}

// History returns past run summaries matching the query.
func (s *Service) History(ctx context.Context, q history.Query) ([]history.Record, error) {
	return s.history.Query(ctx, q)
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.history.Close() }
