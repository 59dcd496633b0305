// Package render draws schedules and statistics for the terminal as a
// GitHub-style tile grid and a per-project summary table.
package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgillet/paceplan/core/model"
)

// palette cycles through distinct terminal colors, one per project.
var palette = []lipgloss.Color{
	lipgloss.Color("39"),  // blue
	lipgloss.Color("42"),  // green
	lipgloss.Color("205"), // pink
	lipgloss.Color("214"), // orange
	lipgloss.Color("135"), // purple
	lipgloss.Color("51"),  // cyan
}

var unassignedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Colors assigns each project a stable style. Projects are colored in
// name order so the mapping survives reordering; a generated renewal
// inherits its parent's color.
func Colors(projects []model.Project) map[string]lipgloss.Style {
	names := make([]string, 0, len(projects))
	byName := make(map[string]model.Project, len(projects))
	for _, p := range projects {
		byName[p.Name] = p
		if !p.IsRenewal {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)

	styles := make(map[string]lipgloss.Style, len(projects))
	for i, name := range names {
		styles[name] = lipgloss.NewStyle().Foreground(palette[i%len(palette)])
	}
	for _, p := range projects {
		if p.IsRenewal {
			if st, ok := styles[p.ParentName]; ok {
				styles[p.Name] = st
			} else {
				styles[p.Name] = lipgloss.NewStyle().Foreground(palette[len(styles)%len(palette)])
			}
		}
	}
	return styles
}
