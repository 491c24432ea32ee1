package exchange

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/logfile"
	"github.com/alexanderramin/tally/internal/stats"
	"github.com/xuri/excelize/v2"
)

const (
	LogSheet     = "Log"
	SummarySheet = "Summary"
)

var ErrNoLogSheet = errors.New("workbook has no Log sheet")

// WriteXLSX writes a workbook with the entries on a "Log" sheet, using the
// same columns as the CSV log, plus a "Summary" sheet.
func WriteXLSX(w io.Writer, entries []domain.TaskLogEntry, summary stats.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LogSheet); err != nil {
		return fmt.Errorf("naming log sheet: %w", err)
	}

	header := make([]any, len(logfile.Header))
	for i, h := range logfile.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(LogSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	headerStyle, styleErr := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if styleErr == nil {
		_ = f.SetRowStyle(LogSheet, 1, 1, headerStyle)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{domain.FormatDate(e.Date), e.Task, e.Completed, e.Rating}
		if err := f.SetSheetRow(LogSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(LogSheet, "A", "A", 12)
	_ = f.SetColWidth(LogSheet, "B", "B", 40)

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	rows := [][]any{
		{"metric", "value"},
		{"total", summary.Total},
		{"completed", summary.Completed},
		{"missed", summary.Missed},
		{"average_rating", summary.AverageRating},
		{"current_streak", summary.CurrentStreak},
		{"longest_streak", summary.LongestStreak},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	if styleErr == nil {
		_ = f.SetRowStyle(SummarySheet, 1, 1, headerStyle)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ReadXLSX reads the "Log" sheet of a workbook produced by WriteXLSX or
// edited by hand with the same columns.
func ReadXLSX(r io.Reader) ([]domain.TaskLogEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(LogSheet); err != nil || idx < 0 {
		return nil, ErrNoLogSheet
	}
	rows, err := f.GetRows(LogSheet)
	if err != nil {
		return nil, fmt.Errorf("reading log sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := logfile.CheckHeader(rows[0]); err != nil {
		return nil, &logfile.RowError{Row: 1, Err: err}
	}

	var entries []domain.TaskLogEntry
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		// GetRows trims trailing empty cells.
		for len(row) < len(logfile.Header) {
			row = append(row, "")
		}
		e, err := logfile.ParseRecord(row[:len(logfile.Header)])
		if err != nil {
			return nil, &logfile.RowError{Row: i + 2, Err: err}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
