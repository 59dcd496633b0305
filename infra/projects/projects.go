// Package projects loads and saves the project inventory file that
// feeds the scheduler.
package projects

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// entry is the on-disk representation of a project. Dates are kept as
// plain YYYY-MM-DD strings so the file stays hand-editable.
type entry struct {
	Name           string  `json:"name" yaml:"name"`
	EndDate        string  `json:"end_date" yaml:"end_date"`
	RemainingDays  float64 `json:"remaining_days" yaml:"remaining_days"`
	StartDate      string  `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	RenewalDays    float64 `json:"renewal_days,omitempty" yaml:"renewal_days,omitempty"`
	RenewalLagDays int     `json:"renewal_lag_days,omitempty" yaml:"renewal_lag_days,omitempty"`
	Priority       int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Probability    float64 `json:"probability,omitempty" yaml:"probability,omitempty"`
}

type inventory struct {
	Projects []entry `json:"projects" yaml:"projects"`
}

// Load reads the project inventory at path. The format is selected
// from the file extension, JSON or YAML.
func Load(path string) ([]model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inv inventory
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &inv); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &inv); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported projects format: %s", filepath.Ext(path))
	}

	out := make([]model.Project, 0, len(inv.Projects))
	for _, e := range inv.Projects {
		p, err := e.toProject()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (e entry) toProject() (model.Project, error) {
	p := model.Project{
		Name:           e.Name,
		RemainingDays:  e.RemainingDays,
		RenewalDays:    e.RenewalDays,
		RenewalLagDays: e.RenewalLagDays,
		Priority:       e.Priority,
		Probability:    e.Probability,
	}
	if p.Probability == 0 {
		p.Probability = 1
	}
	if e.EndDate == "" {
		return model.Project{}, fmt.Errorf("project %s: end_date is required", e.Name)
	}
	end, err := time.Parse(calendar.DateFormat, e.EndDate)
	if err != nil {
		return model.Project{}, fmt.Errorf("project %s: invalid end_date %q: %w", e.Name, e.EndDate, err)
	}
	p.EndDate = calendar.Day(end)
	if e.StartDate != "" {
		start, err := time.Parse(calendar.DateFormat, e.StartDate)
		if err != nil {
			return model.Project{}, fmt.Errorf("project %s: invalid start_date %q: %w", e.Name, e.StartDate, err)
		}
		p.StartDate = calendar.Day(start)
	}
	if err := p.Validate(); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func fromProject(p model.Project) entry {
	e := entry{
		Name:           p.Name,
		EndDate:        p.EndDate.Format(calendar.DateFormat),
		RemainingDays:  p.RemainingDays,
		RenewalDays:    p.RenewalDays,
		RenewalLagDays: p.RenewalLagDays,
		Priority:       p.Priority,
		Probability:    p.Probability,
	}
	if !p.StartDate.IsZero() {
		e.StartDate = p.StartDate.Format(calendar.DateFormat)
	}
	return e
}

// Save writes the inventory back to path as indented JSON.
func Save(path string, projects []model.Project) error {
	inv := inventory{Projects: make([]entry, 0, len(projects))}
	for _, p := range projects {
		inv.Projects = append(inv.Projects, fromProject(p))
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Sample returns a small starter inventory anchored on today.
func Sample(today time.Time) []model.Project {
	day := calendar.Day(today)
	return []model.Project{
		{
			Name:          "Acme Corp",
			EndDate:       day.AddDate(0, 2, 0),
			RemainingDays: 20,
			RenewalDays:   15,
			Priority:      2,
			Probability:   1,
		},
		{
			Name:          "Orbital Audit",
			EndDate:       day.AddDate(0, 1, 0),
			RemainingDays: 8,
			Priority:      3,
			Probability:   1,
		},
		{
			Name:          "Blue Harbor",
			EndDate:       day.AddDate(0, 4, 0),
			StartDate:     day.AddDate(0, 1, 0),
			RemainingDays: 12,
			Priority:      1,
			Probability:   0.8,
		},
	}
}
