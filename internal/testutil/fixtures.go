package testutil

import (
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// EntryOption customizes a test entry.
type EntryOption func(*domain.TaskLogEntry)

func WithTask(task string) EntryOption {
	return func(e *domain.TaskLogEntry) {
		e.Task = task
	}
}

func WithRating(r int) EntryOption {
	return func(e *domain.TaskLogEntry) {
		e.Rating = r
	}
}

func Missed() EntryOption {
	return func(e *domain.TaskLogEntry) {
		e.Completed = false
	}
}

// Day returns UTC midnight for the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewTestEntry returns a completed entry rated 5 on date.
func NewTestEntry(date time.Time, opts ...EntryOption) domain.TaskLogEntry {
	e := domain.TaskLogEntry{
		Date:      domain.NormalizeDate(date),
		Task:      "Daily task",
		Completed: true,
		Rating:    5,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// EntryRun returns one completed entry per day for n days starting at from.
func EntryRun(from time.Time, n int, opts ...EntryOption) []domain.TaskLogEntry {
	out := make([]domain.TaskLogEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewTestEntry(from.AddDate(0, 0, i), opts...))
	}
	return out
}
