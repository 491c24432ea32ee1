package contract

import (
	"time"

	"github.com/alexanderramin/tally/internal/stats"
)

type DashboardRequest struct {
	// Now overrides the reference date ("today"); nil means the wall clock.
	Now         *time.Time
	Year        int
	Month       time.Month
	Policy      stats.StreakPolicy
	DailyTarget int
}

// NewDashboardRequest targets the month containing now with default policy.
func NewDashboardRequest(now time.Time) DashboardRequest {
	return DashboardRequest{
		Now:         &now,
		Year:        now.Year(),
		Month:       now.Month(),
		Policy:      stats.DefaultStreakPolicy(),
		DailyTarget: 1,
	}
}

// DayRow is one date of the monthly breakdown.
type DayRow struct {
	Date      time.Time
	Completed int
	Missed    int
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Today       time.Time
	Year        int
	Month       time.Month
	Summary     stats.Summary
	Progress    stats.Progress
	// Days is sorted by date ascending.
	Days []DayRow
}

type DashboardErrorCode string

const (
	DashboardErrInvalidMonth  DashboardErrorCode = "INVALID_MONTH"
	DashboardErrInvalidTarget DashboardErrorCode = "INVALID_TARGET"
)

type DashboardError struct {
	Code    DashboardErrorCode
	Message string
}

func (e *DashboardError) Error() string {
	return string(e.Code) + ": " + e.Message
}
