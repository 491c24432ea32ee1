package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// DayTally is the per-date split of completed and missed entries.
type DayTally struct {
	Completed int
	Missed    int
}

// MonthlyBreakdown groups the entries that fall in the given month by date.
// Keys are UTC midnight. A month with no entries yields an empty map.
func MonthlyBreakdown(entries []domain.TaskLogEntry, year int, month time.Month) map[time.Time]DayTally {
	out := make(map[time.Time]DayTally)
	for _, e := range entries {
		d := domain.NormalizeDate(e.Date)
		if d.Year() != year || d.Month() != month {
			continue
		}
		t := out[d]
		if e.Completed {
			t.Completed++
		} else {
			t.Missed++
		}
		out[d] = t
	}
	return out
}

// Progress measures a month's completed tasks against a daily target.
type Progress struct {
	DaysMeasured int
	Expected     int
	Done         int
	Remaining    int
	Percent      float64
	// Score is Percent scaled to 0-10 with one decimal.
	Score float64
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthProgress compares completed entries in the month with the number of
// tasks expected so far. The current month is measured up to today, past
// months in full, future months not at all.
func MonthProgress(entries []domain.TaskLogEntry, year int, month time.Month, today time.Time, dailyTarget int) Progress {
	today = domain.NormalizeDate(today)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	curStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	var days int
	switch {
	case monthStart.Equal(curStart):
		days = today.Day()
	case monthStart.Before(curStart):
		days = DaysInMonth(year, month)
	}

	p := Progress{DaysMeasured: days, Expected: days * max(dailyTarget, 0)}
	for _, t := range MonthlyBreakdown(entries, year, month) {
		p.Done += t.Completed
	}
	p.Done = min(p.Done, p.Expected)
	p.Remaining = p.Expected - p.Done
	if p.Expected > 0 {
		p.Percent = float64(p.Done) / float64(p.Expected) * 100
	}
	p.Score = math.Round(math.Min(p.Percent/10, 10)*10) / 10
	return p
}
