package scheduler

import (
	"time"

	"github.com/mgillet/paceplan/core/model"
)

// ProjectStats summarizes one project's share of a produced schedule.
type ProjectStats struct {
	Project       model.Project `json:"project"`
	TotalSlots    int           `json:"total_slots"`
	SlotsPerWeek  float64       `json:"slots_per_week"`
	DaysPerWeek   float64       `json:"days_per_week"`
	LastScheduled time.Time     `json:"last_scheduled,omitempty"` // zero when never scheduled
}

// FullyScheduled reports whether every whole day of the project's
// original budget received a slot. The comparison uses the caller's
// budget, not the engine's run-time counter.
func (ps ProjectStats) FullyScheduled() bool {
	return ps.TotalSlots >= ps.Project.SlotsRemaining()
}

// Statistics derives per-project metrics from the plan. One entry is
// returned per project in the expanded working set, in that set's order.
func (p *Plan) Statistics() []ProjectStats {
	stats := make([]ProjectStats, 0, len(p.Projects))
	for _, proj := range p.Projects {
		slots := p.Schedule.ProjectSlots(proj.Name)
		perWeek := 0.0
		if p.NumWeeks > 0 {
			perWeek = float64(len(slots)) / float64(p.NumWeeks)
		}
		stats = append(stats, ProjectStats{
			Project:       proj,
			TotalSlots:    len(slots),
			SlotsPerWeek:  perWeek,
			DaysPerWeek:   perWeek, // one slot is one day in the full-day model
			LastScheduled: p.Schedule.ProjectLastDate(proj.Name),
		})
	}
	return stats
}
