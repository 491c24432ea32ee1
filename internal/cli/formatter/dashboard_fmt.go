package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/contract"
)

const (
	dashboardProgressBarWidth = 24
	dayChartMaxBlocks         = 20
)

// FormatDashboard renders the summary, month progress and per-day table.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	s := resp.Summary
	b.WriteString(Header("Summary") + "\n")
	b.WriteString(RenderTable(
		[]string{"METRIC", "VALUE"},
		[][]string{
			{"Tasks logged", fmt.Sprintf("%d", s.Total)},
			{"Completed", StyleGreen.Render(fmt.Sprintf("%d", s.Completed))},
			{"Missed", StyleRed.Render(fmt.Sprintf("%d", s.Missed))},
			{"Average rating", FormatAverage(s.AverageRating, s.Total)},
			{"Current streak", StreakBadge(s.CurrentStreak)},
			{"Longest streak", StreakBadge(s.LongestStreak)},
		},
	))

	p := resp.Progress
	b.WriteString("\n" + Header("Month progress") + "\n")
	pct := 0.0
	if p.Expected > 0 {
		pct = float64(p.Done) / float64(p.Expected)
	}
	b.WriteString(RenderProgress(pct, dashboardProgressBarWidth) + "\n")
	b.WriteString(fmt.Sprintf("%d of %d done, %d remaining %s\n",
		p.Done, p.Expected, p.Remaining, Dim(fmt.Sprintf("(%d days measured)", p.DaysMeasured))))
	b.WriteString(fmt.Sprintf("Score %s\n", Bold(fmt.Sprintf("%.1f/10", p.Score))))

	b.WriteString("\n" + Header("Daily breakdown") + "\n")
	if len(resp.Days) == 0 {
		b.WriteString(Dim("No entries this month.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.Days))
		for _, d := range resp.Days {
			rows = append(rows, []string{
				d.Date.Format("Mon 02"),
				fmt.Sprintf("%d", d.Completed),
				fmt.Sprintf("%d", d.Missed),
				dayChart(d.Completed, d.Missed),
			})
		}
		b.WriteString(RenderTable([]string{"DAY", "DONE", "MISSED", ""}, rows))
	}

	title := fmt.Sprintf("%s %d", resp.Month, resp.Year)
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// dayChart draws one green block per completed entry and one red block per
// missed entry, capped so a busy day does not blow out the table.
func dayChart(completed, missed int) string {
	total := completed + missed
	if total > dayChartMaxBlocks {
		completed = completed * dayChartMaxBlocks / total
		missed = dayChartMaxBlocks - completed
	}
	return StyleGreen.Render(strings.Repeat(filledBlock, completed)) +
		StyleRed.Render(strings.Repeat(filledBlock, missed))
}
