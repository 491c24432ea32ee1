package stats

import (
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// Summary bundles the scalar figures shown at the top of the dashboard.
type Summary struct {
	Total         int
	Completed     int
	Missed        int
	AverageRating float64
	CurrentStreak int
	LongestStreak int
}

func Summarize(entries []domain.TaskLogEntry, today time.Time, policy StreakPolicy) Summary {
	return Summary{
		Total:         len(entries),
		Completed:     CompletionCount(entries),
		Missed:        MissedCount(entries),
		AverageRating: AverageRating(entries),
		CurrentStreak: CurrentStreak(entries, today, policy),
		LongestStreak: LongestStreak(entries),
	}
}
