// Package history persists scheduling run summaries so past planning
// decisions can be reviewed later.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/mgillet/paceplan/config"
	"github.com/mgillet/paceplan/core/scheduler"
)

// Record captures one completed scheduling run, including the miss
// diagnostics and per-project statistics the run produced.
type Record struct {
	ID         string                   `json:"id"`
	Timestamp  time.Time                `json:"timestamp"`
	Method     string                   `json:"method"`
	NumWeeks   int                      `json:"num_weeks"`
	Projects   int                      `json:"projects"`
	Assigned   int                      `json:"assigned"`
	Unassigned int                      `json:"unassigned"`
	Misses     []scheduler.DeadlineMiss `json:"misses,omitempty"`
	Stats      []scheduler.ProjectStats `json:"stats,omitempty"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start  time.Time
	End    time.Time
	Method string
	Limit  int
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NewStore builds a Store from the history configuration.
func NewStore(cfg config.HistoryConfig) (Store, error) {
	switch cfg.Backend {
	case "jsonl":
		return NewJSONLStore(cfg.Path)
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown history backend %s", cfg.Backend)
	}
}
