package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/stats"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestRelativeDay(t *testing.T) {
	today := day(10)
	tests := []struct {
		in   time.Time
		want string
	}{
		{day(10), "Today"},
		{day(9), "Yesterday"},
		{day(11), "Tomorrow"},
		{day(3), "7d ago"},
		{day(13), "In 3d"},
		{time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC), "Today"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeDay(tt.in, today), tt.in.String())
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "ñañ…", Truncate("ñañañaña", 4))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "--", stripANSI(FormatAverage(0, 0)))
	assert.Equal(t, "6.50", stripANSI(FormatAverage(6.5, 2)))
}

func TestStreakBadge(t *testing.T) {
	assert.Equal(t, "0 days", stripANSI(StreakBadge(0)))
	assert.Equal(t, "1 day", stripANSI(StreakBadge(1)))
	assert.Equal(t, "12 days", stripANSI(StreakBadge(12)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleGreen.Render("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestFormatEntries(t *testing.T) {
	entries := []domain.TaskLogEntry{
		{Date: day(9), Task: "write report", Completed: true, Rating: 8},
		{Date: day(10), Task: "gym", Completed: false, Rating: 2},
	}
	out := stripANSI(FormatEntries(entries, day(10)))

	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "2024-01-09")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "✔ done")
	assert.Contains(t, out, "✖ missed")
	assert.Contains(t, out, "8/10")
}

func TestFormatEntries_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatEntries(nil, day(1))), "No entries logged yet")
}

func TestFormatDashboard(t *testing.T) {
	resp := &contract.DashboardResponse{
		Year:  2024,
		Month: time.January,
		Summary: stats.Summary{
			Total: 3, Completed: 2, Missed: 1, AverageRating: 6.333,
			CurrentStreak: 2, LongestStreak: 2,
		},
		Progress: stats.Progress{DaysMeasured: 10, Expected: 10, Done: 2, Remaining: 8, Percent: 20, Score: 2},
		Days: []contract.DayRow{
			{Date: day(1), Completed: 1, Missed: 1},
			{Date: day(2), Completed: 1},
		},
	}
	out := stripANSI(FormatDashboard(resp))

	assert.Contains(t, out, "JANUARY 2024")
	assert.Contains(t, out, "6.33")
	assert.Contains(t, out, "2 days")
	assert.Contains(t, out, "2 of 10 done, 8 remaining")
	assert.Contains(t, out, "Score 2.0/10")
	assert.Contains(t, out, "Mon 01")
	assert.NotContains(t, out, "No entries this month")
}

func TestFormatDashboard_EmptyMonth(t *testing.T) {
	out := stripANSI(FormatDashboard(&contract.DashboardResponse{Year: 2024, Month: time.March}))
	assert.Contains(t, out, "No entries this month.")
	assert.Contains(t, out, "--")
}

func TestDayChart_Caps(t *testing.T) {
	assert.Equal(t, 3, strings.Count(stripANSI(dayChart(2, 1)), filledBlock))
	assert.Equal(t, dayChartMaxBlocks, strings.Count(stripANSI(dayChart(50, 50)), filledBlock))
}
