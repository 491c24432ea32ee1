package contract

import (
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// LogRequest commits one entry ("Go Live").
type LogRequest struct {
	Entry domain.TaskLogEntry
	// Now overrides the reference date used by the backfill lock.
	Now *time.Time
	// AllowBackfill permits dates other than today.
	AllowBackfill bool
}

// ImportResult reports a bulk import.
type ImportResult struct {
	Imported int
	Total    int
}
