// Package analysis derives aggregate views from a produced schedule:
// free capacity per month, week-by-week availability, and per-project
// allocation rates.
package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/mgillet/paceplan/core/model"
)

// MonthlyCapacity summarizes one calendar month of the schedule.
type MonthlyCapacity struct {
	Month      time.Time // first day of the month, UTC
	Total      int       // weekday slots in the month
	Assigned   int
	Unassigned int
}

// MonthlyUnassigned aggregates free weekdays per calendar month, in
// chronological order.
func MonthlyUnassigned(s *model.Schedule) []MonthlyCapacity {
	byMonth := make(map[time.Time]*MonthlyCapacity)
	for _, sl := range s.Slots {
		key := time.Date(sl.Date.Year(), sl.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyCapacity{Month: key}
			byMonth[key] = m
		}
		m.Total++
		if sl.Assigned() {
			m.Assigned++
		} else {
			m.Unassigned++
		}
	}
	out := make([]MonthlyCapacity, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// WeekCapacity summarizes one schedule week.
type WeekCapacity struct {
	WeekStart  time.Time // Monday of the week, UTC
	Assigned   int
	Unassigned int
}

// WeeklyAvailability aggregates free weekdays per week, keyed by the
// Monday of each week, in chronological order.
func WeeklyAvailability(s *model.Schedule) []WeekCapacity {
	byWeek := make(map[time.Time]*WeekCapacity)
	for _, sl := range s.Slots {
		key := WeekStart(sl.Date)
		w, ok := byWeek[key]
		if !ok {
			w = &WeekCapacity{WeekStart: key}
			byWeek[key] = w
		}
		if sl.Assigned() {
			w.Assigned++
		} else {
			w.Unassigned++
		}
	}
	out := make([]WeekCapacity, 0, len(byWeek))
	for _, w := range byWeek {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
	return out
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeeklyLoad is the allocation of one project across schedule weeks.
type WeeklyLoad struct {
	Project string
	// Days holds the slot count for each week of the horizon.
	Days []float64
	// Smoothed is the trailing four-week mean of Days, useful for
	// reading a steady load out of an alternating pattern.
	Smoothed []float64
}

const smoothingWeeks = 4

// WeeklyAllocation computes per-project weekly slot counts with the
// trailing mean attached. Projects are sorted by name; weeks follow the
// schedule order starting at the week of StartDate.
func WeeklyAllocation(s *model.Schedule) []WeeklyLoad {
	if len(s.Slots) == 0 {
		return nil
	}
	first := WeekStart(s.StartDate)
	weekIndex := func(d time.Time) int {
		return int(d.Sub(first).Hours() / 24 / 7)
	}
	numWeeks := weekIndex(s.Slots[len(s.Slots)-1].Date) + 1

	byProject := make(map[string][]float64)
	for _, sl := range s.Slots {
		if !sl.Assigned() {
			continue
		}
		days, ok := byProject[sl.Project]
		if !ok {
			days = make([]float64, numWeeks)
			byProject[sl.Project] = days
		}
		days[weekIndex(sl.Date)]++
	}

	names := make([]string, 0, len(byProject))
	for name := range byProject {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]WeeklyLoad, 0, len(names))
	for _, name := range names {
		days := byProject[name]
		smoothed := make([]float64, len(days))
		for i := range days {
			lo := i - smoothingWeeks + 1
			if lo < 0 {
				lo = 0
			}
			smoothed[i] = stat.Mean(days[lo:i+1], nil)
		}
		out = append(out, WeeklyLoad{Project: name, Days: days, Smoothed: smoothed})
	}
	return out
}

// FilterByProbability drops projects whose probability falls below min.
// Renewal budgets ride along with their parent, so no extra handling is
// needed for generated projects.
func FilterByProbability(projects []model.Project, min float64) []model.Project {
	if min <= 0 {
		return projects
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		prob := p.Probability
		if prob == 0 {
			prob = 1
		}
		if prob >= min {
			out = append(out, p)
		}
	}
	return out
}
