// Package export serializes produced schedules for downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/core/model"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, s *model.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteCSV writes the schedule slots to w, one weekday per row. An
// empty project column marks an unassigned day.
func WriteCSV(w io.Writer, s *model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "weekday", "project"}); err != nil {
		return err
	}
	for _, sl := range s.Slots {
		rec := []string{
			sl.Date.Format(calendar.DateFormat),
			sl.Date.Weekday().String(),
			sl.Project,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
