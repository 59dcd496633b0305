package render

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgillet/paceplan/core/analysis"
	"github.com/mgillet/paceplan/core/model"
)

const (
	fullTile  = "██"
	emptyTile = "░░"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Tiles renders the schedule as a tile grid: one row per day of week,
// one column per week, with a month-initial header and a color legend.
func Tiles(s *model.Schedule, projects []model.Project) string {
	if len(s.Slots) == 0 {
		return "No schedule to display."
	}
	styles := Colors(projects)

	first := analysis.WeekStart(s.Slots[0].Date)
	last := s.Slots[len(s.Slots)-1].Date
	numWeeks := int(last.Sub(first).Hours()/24/7) + 1

	byDate := make(map[time.Time]string, len(s.Slots))
	for _, sl := range s.Slots {
		byDate[sl.Date] = sl.Project
	}

	var b strings.Builder
	b.WriteString(legend(s, styles))
	b.WriteString(header(first, numWeeks))
	b.WriteByte('\n')

	for dow := 0; dow < 7; dow++ {
		b.WriteString(dayNames[dow])
		b.WriteByte(' ')
		for w := 0; w < numWeeks; w++ {
			date := first.AddDate(0, 0, w*7+dow)
			name, ok := byDate[date]
			switch {
			case !ok:
				// weekend or outside the horizon
				b.WriteString("  ")
			case name == "":
				b.WriteString(unassignedStyle.Render(emptyTile))
			default:
				b.WriteString(styles[name].Render(fullTile))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// legend lists each scheduled project and its color block.
func legend(s *model.Schedule, styles map[string]lipgloss.Style) string {
	seen := make(map[string]bool)
	var names []string
	for _, sl := range s.Slots {
		if sl.Assigned() && !seen[sl.Project] {
			seen[sl.Project] = true
			names = append(names, sl.Project)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Legend:\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(styles[name].Render(fullTile))
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	b.WriteString(unassignedStyle.Render(emptyTile))
	b.WriteString(" Unassigned\n\n")
	return b.String()
}

// header marks the first week of each month with the month's initial.
func header(first time.Time, numWeeks int) string {
	var b strings.Builder
	b.WriteString("    ")
	lastMonth := time.Month(0)
	for w := 0; w < numWeeks; w++ {
		date := first.AddDate(0, 0, w*7)
		if date.Month() != lastMonth {
			b.WriteString(date.Month().String()[:1])
			b.WriteByte(' ')
			lastMonth = date.Month()
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}
