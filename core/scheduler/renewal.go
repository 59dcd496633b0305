package scheduler

import (
	"time"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// renewalSpanDays is how long a generated renewal project runs.
const renewalSpanDays = 365

// expandRenewals derives follow-on projects from base projects carrying
// a renewal budget. A renewal starts the day after its parent's deadline
// (plus an optional lag), lasts one year and never chains into further
// renewals. Renewals whose start falls beyond the horizon are not
// generated. The returned list is the working set for the whole run.
func expandRenewals(base []model.Project, start time.Time, numWeeks int) []model.Project {
	horizonEnd := calendar.Day(start).AddDate(0, 0, numWeeks*7)

	all := make([]model.Project, 0, len(base))
	all = append(all, base...)
	for _, p := range base {
		if p.RenewalDays <= 0 {
			continue
		}
		renewalStart := calendar.Day(p.EndDate).AddDate(0, 0, 1+p.RenewalLagDays)
		if renewalStart.After(horizonEnd) {
			continue
		}
		all = append(all, model.Project{
			Name:          p.Name + " (Renewal)",
			EndDate:       renewalStart.AddDate(0, 0, renewalSpanDays),
			RemainingDays: p.RenewalDays,
			StartDate:     renewalStart,
			Priority:      p.Priority,
			Probability:   p.Probability,
			IsRenewal:     true,
			ParentName:    p.Name,
		})
	}
	return all
}
