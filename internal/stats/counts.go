// Package stats derives dashboard figures from a sequence of log entries.
// Every function is pure: callers pass the entries and a reference date.
package stats

import (
	"github.com/alexanderramin/tally/internal/domain"
)

func CompletionCount(entries []domain.TaskLogEntry) int {
	n := 0
	for _, e := range entries {
		if e.Completed {
			n++
		}
	}
	return n
}

func MissedCount(entries []domain.TaskLogEntry) int {
	return len(entries) - CompletionCount(entries)
}

// AverageRating is the arithmetic mean of all ratings, or 0 for an empty log.
func AverageRating(entries []domain.TaskLogEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Rating
	}
	return float64(sum) / float64(len(entries))
}
