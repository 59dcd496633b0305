package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/scheduler"
)

// StatsTable renders the per-project summary: days per week, slot
// counts, completion marks, and the deadline misses block.
func StatsTable(plan *scheduler.Plan) string {
	stats := plan.Statistics()
	styles := Colors(plan.Projects)

	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\nPROJECT STATISTICS\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	if last := plan.Schedule.LastWorkDate(); !last.IsZero() {
		fmt.Fprintf(&b, "Work scheduled until: %s (%s)\n\n",
			last.Format(calendar.DateFormat), last.Weekday())
	}

	b.WriteString("Days per week by project:\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteByte('\n')

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].DaysPerWeek > stats[j].DaysPerWeek
	})
	for _, st := range stats {
		mark := "○"
		if st.FullyScheduled() {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  %s %-24s %.1f days/week  (%d slots) %s\n",
			styles[st.Project.Name].Render(fullTile), st.Project.Name,
			st.DaysPerWeek, st.TotalSlots, mark)
		if !st.LastScheduled.IsZero() {
			fmt.Fprintf(&b, "      Last scheduled: %s\n", st.LastScheduled.Format(calendar.DateFormat))
		}
	}
	b.WriteString("\nLegend: ✓ = fully scheduled, ○ = partially scheduled\n")
	b.WriteString(Misses(plan))
	return b.String()
}

// Misses renders the deadline-miss warnings block, or an empty string
// when every budget fit.
func Misses(plan *scheduler.Plan) string {
	if len(plan.Misses) == 0 {
		return ""
	}
	deadlines := make(map[string]string, len(plan.Projects))
	for _, p := range plan.Projects {
		deadlines[p.Name] = p.EndDate.Format(calendar.DateFormat)
	}
	var b strings.Builder
	b.WriteString("\nDeadline misses:\n")
	for _, m := range plan.Misses {
		fmt.Fprintf(&b, "  %s misses %s by %d day(s)",
			m.Project, deadlines[m.Project], m.DaysShort)
		if !m.LastAssigned.IsZero() {
			fmt.Fprintf(&b, ", last slot %s", m.LastAssigned.Format(calendar.DateFormat))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
