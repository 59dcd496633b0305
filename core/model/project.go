package model

import (
	"fmt"
	"math"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
)

// Project is a unit of competing work with a deadline and a remaining
// budget expressed in full days. Name is the unique identity within a
// planning run; the engine never mutates a Project and keeps its own
// working counters instead.
type Project struct {
	Name          string
	EndDate       time.Time // deadline, inclusive
	RemainingDays float64   // remaining budget, may be fractional

	// StartDate is optional; the zero value means the project can start
	// at the beginning of the planning horizon.
	StartDate time.Time

	// RenewalDays, when positive, generates a follow-on project with this
	// budget once the deadline passes. RenewalLagDays shifts the renewal
	// start by that many extra calendar days.
	RenewalDays    float64
	RenewalLagDays int

	// Priority ranks projects when allocation rules tie. Higher wins.
	Priority int

	// Probability is the confidence that the project materializes, used
	// to filter speculative work before scheduling. Defaults to 1.
	Probability float64

	IsRenewal  bool
	ParentName string // parent project name, set only on generated renewals
}

// SlotsRemaining returns the whole working days left in the budget.
// Fractional remainders are truncated.
func (p Project) SlotsRemaining() int {
	if p.RemainingDays <= 0 {
		return 0
	}
	return int(math.Floor(p.RemainingDays))
}

// EffectiveStart returns the project start date, or fallback when no
// explicit start was given.
func (p Project) EffectiveStart(fallback time.Time) time.Time {
	if p.StartDate.IsZero() {
		return calendar.Day(fallback)
	}
	return calendar.Day(p.StartDate)
}

// Validate checks that the project fields are coherent. Deeper field
// validation, such as date parsing, belongs to the loader.
func (p Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.RemainingDays < 0 {
		return fmt.Errorf("project %s: remaining days must not be negative, got %v", p.Name, p.RemainingDays)
	}
	if !p.StartDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("project %s: end date %s precedes start date %s",
			p.Name, p.EndDate.Format(calendar.DateFormat), p.StartDate.Format(calendar.DateFormat))
	}
	return nil
}
