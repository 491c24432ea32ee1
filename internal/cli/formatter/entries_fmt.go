package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

const taskColumnWidth = 40

// FormatEntries renders the log as an indexed table. The index column is the
// position accepted by "tally delete".
func FormatEntries(entries []domain.TaskLogEntry, today time.Time) string {
	if len(entries) == 0 {
		return Dim("No entries logged yet. Run \"tally log\" to add one.") + "\n"
	}

	headers := []string{"#", "DATE", "", "TASK", "STATUS", "RATING"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i)),
			domain.FormatDate(e.Date),
			Dim(RelativeDay(e.Date, today)),
			Truncate(e.Task, taskColumnWidth),
			StatusPill(e),
			FormatRating(e.Rating),
		})
	}
	return RenderTable(headers, rows)
}

// FormatEntry renders a single entry on one line, used for confirmations.
func FormatEntry(e domain.TaskLogEntry) string {
	return strings.Join([]string{
		domain.FormatDate(e.Date),
		Bold(e.Task),
		StatusPill(e),
		FormatRating(e.Rating),
	}, "  ")
}
