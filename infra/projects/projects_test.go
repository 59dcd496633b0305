package projects

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgillet/paceplan/core/calendar"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	data := `{
  "projects": [
    {"name": "alpha", "end_date": "2025-07-15", "remaining_days": 10, "priority": 2},
    {"name": "beta", "end_date": "2025-09-01", "start_date": "2025-07-01", "remaining_days": 4.5, "probability": 0.6}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, calendar.Date(2025, time.July, 15), got[0].EndDate)
	assert.Equal(t, 10.0, got[0].RemainingDays)
	assert.Equal(t, 2, got[0].Priority)
	assert.Equal(t, 1.0, got[0].Probability, "probability defaults to 1")

	assert.Equal(t, calendar.Date(2025, time.July, 1), got[1].StartDate)
	assert.Equal(t, 4.5, got[1].RemainingDays)
	assert.Equal(t, 0.6, got[1].Probability)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.yaml")
	data := `projects:
  - name: gamma
    end_date: "2025-08-20"
    remaining_days: 6
    renewal_days: 12
    renewal_lag_days: 30
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12.0, got[0].RenewalDays)
	assert.Equal(t, 30, got[0].RenewalLagDays)
}

func TestLoadRejectsBadDates(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "missing.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[{"name":"x","remaining_days":1}]}`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[{"name":"x","end_date":"15/07/2025","remaining_days":1}]}`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")

	orig := Sample(calendar.Date(2025, time.June, 2))
	require.NoError(t, Save(path, orig))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, len(orig))
	for i := range orig {
		assert.Equal(t, orig[i].Name, got[i].Name)
		assert.Equal(t, orig[i].EndDate, got[i].EndDate)
		assert.Equal(t, orig[i].StartDate, got[i].StartDate)
		assert.Equal(t, orig[i].RemainingDays, got[i].RemainingDays)
		assert.Equal(t, orig[i].Probability, got[i].Probability)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
