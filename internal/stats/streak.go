package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// StreakAnchor selects the day a current streak is counted back from.
type StreakAnchor string

const (
	AnchorToday       StreakAnchor = "today"
	AnchorLatestEntry StreakAnchor = "latest"
)

// ParseStreakAnchor maps a config value onto a StreakAnchor.
func ParseStreakAnchor(s string) (StreakAnchor, error) {
	switch StreakAnchor(s) {
	case AnchorToday, AnchorLatestEntry:
		return StreakAnchor(s), nil
	}
	return "", fmt.Errorf("unknown streak anchor %q (want %q or %q)", s, AnchorToday, AnchorLatestEntry)
}

// StreakPolicy controls how CurrentStreak treats the end of the run.
type StreakPolicy struct {
	Anchor StreakAnchor
	// TodayGrace lets a day with no entries yet (only "today" under
	// AnchorToday) not break the streak; counting starts at yesterday.
	TodayGrace bool
}

func DefaultStreakPolicy() StreakPolicy {
	return StreakPolicy{Anchor: AnchorToday, TodayGrace: true}
}

// dayOutcome groups entries by calendar date. The value is true when at
// least one entry on that date is completed.
func dayOutcome(entries []domain.TaskLogEntry) map[time.Time]bool {
	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		d := domain.NormalizeDate(e.Date)
		days[d] = days[d] || e.Completed
	}
	return days
}

// CurrentStreak counts consecutive calendar days ending at the policy's
// anchor on which at least one task was completed. A logged day with only
// missed tasks breaks the run.
func CurrentStreak(entries []domain.TaskLogEntry, today time.Time, policy StreakPolicy) int {
	if len(entries) == 0 {
		return 0
	}
	days := dayOutcome(entries)

	var anchor time.Time
	switch policy.Anchor {
	case AnchorLatestEntry:
		for d := range days {
			if d.After(anchor) {
				anchor = d
			}
		}
	default:
		anchor = domain.NormalizeDate(today)
		if _, logged := days[anchor]; !logged && policy.TodayGrace {
			anchor = anchor.AddDate(0, 0, -1)
		}
	}

	streak := 0
	for d := anchor; days[d]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak returns the best run of consecutive completed days found
// anywhere in the log.
func LongestStreak(entries []domain.TaskLogEntry) int {
	var done []time.Time
	for d, ok := range dayOutcome(entries) {
		if ok {
			done = append(done, d)
		}
	}
	sort.Slice(done, func(i, j int) bool { return done[i].Before(done[j]) })

	best, cur := 0, 0
	for i, d := range done {
		if i > 0 && done[i-1].AddDate(0, 0, 1).Equal(d) {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}
