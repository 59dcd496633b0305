package model

import "time"

// ScheduledSlot is one working day and the project assigned to it. The
// project is referenced by name only; an empty name means the day was
// left unassigned.
type ScheduledSlot struct {
	Date    time.Time `json:"date"`
	Project string    `json:"project,omitempty"`
}

// Assigned reports whether the slot carries work.
func (s ScheduledSlot) Assigned() bool { return s.Project != "" }

// Schedule is an ordered sequence of weekday slots covering the half-open
// range [StartDate, EndDate). Weekends carry no slot. A Schedule is
// immutable once produced.
type Schedule struct {
	Slots     []ScheduledSlot `json:"slots"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

// SlotsForDate returns the slots on the given date. With the full-day
// model there is at most one.
func (s *Schedule) SlotsForDate(date time.Time) []ScheduledSlot {
	var out []ScheduledSlot
	for _, sl := range s.Slots {
		if sl.Date.Equal(date) {
			out = append(out, sl)
		}
	}
	return out
}

// ProjectSlots returns all slots assigned to the named project, in date
// order.
func (s *Schedule) ProjectSlots(name string) []ScheduledSlot {
	var out []ScheduledSlot
	for _, sl := range s.Slots {
		if sl.Project == name {
			out = append(out, sl)
		}
	}
	return out
}

// UniqueDates returns the distinct slot dates in ascending order. Slots
// are already sorted, so duplicates would be adjacent.
func (s *Schedule) UniqueDates() []time.Time {
	var out []time.Time
	for _, sl := range s.Slots {
		if len(out) == 0 || !out[len(out)-1].Equal(sl.Date) {
			out = append(out, sl.Date)
		}
	}
	return out
}

// LastWorkDate returns the latest date carrying an assignment, or the
// zero time when nothing is assigned.
func (s *Schedule) LastWorkDate() time.Time {
	var last time.Time
	for _, sl := range s.Slots {
		if sl.Assigned() && sl.Date.After(last) {
			last = sl.Date
		}
	}
	return last
}

// ProjectLastDate returns the latest date assigned to the named project,
// or the zero time when it never received a slot.
func (s *Schedule) ProjectLastDate(name string) time.Time {
	var last time.Time
	for _, sl := range s.Slots {
		if sl.Project == name && sl.Date.After(last) {
			last = sl.Date
		}
	}
	return last
}

// AssignedCount returns the number of slots carrying work.
func (s *Schedule) AssignedCount() int {
	n := 0
	for _, sl := range s.Slots {
		if sl.Assigned() {
			n++
		}
	}
	return n
}

// UnassignedCount returns the number of empty weekday slots.
func (s *Schedule) UnassignedCount() int {
	return len(s.Slots) - s.AssignedCount()
}
