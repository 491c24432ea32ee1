// Package logfile encodes task log entries as CSV with a
// date,task,completed,rating header.
package logfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// Header is the column layout of a log file.
var Header = []string{"date", "task", "completed", "rating"}

// ErrBadHeader is returned when the first row does not match Header.
var ErrBadHeader = errors.New("unexpected header row")

// RowError locates a decoding failure. Row is 1-based and counts the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Encode writes the header followed by one row per entry.
func Encode(w io.Writer, entries []domain.TaskLogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(Record(e)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Record renders a single entry in column order.
func Record(e domain.TaskLogEntry) []string {
	return []string{
		domain.FormatDate(e.Date),
		e.Task,
		strconv.FormatBool(e.Completed),
		strconv.Itoa(e.Rating),
	}
}

// Decode reads a log written by Encode. An empty input yields no entries.
func Decode(r io.Reader) ([]domain.TaskLogEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, &RowError{Row: 1, Err: err}
	}
	if err := CheckHeader(head); err != nil {
		return nil, &RowError{Row: 1, Err: err}
	}

	var entries []domain.TaskLogEntry
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		e, err := ParseRecord(rec)
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CheckHeader compares a header row with Header, ignoring case and
// surrounding spaces.
func CheckHeader(head []string) error {
	if len(head) != len(Header) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrBadHeader, len(head), len(Header))
	}
	for i, col := range head {
		// Spreadsheet tools sometimes prepend a byte order mark.
		col = strings.TrimPrefix(col, "\ufeff")
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, col, Header[i])
		}
	}
	return nil
}

// ParseRecord converts one row into a validated entry.
func ParseRecord(rec []string) (domain.TaskLogEntry, error) {
	if len(rec) != len(Header) {
		return domain.TaskLogEntry{}, fmt.Errorf("got %d columns, want %d", len(rec), len(Header))
	}
	date, err := domain.ParseDate(rec[0])
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	completed, err := domain.ParseCompleted(rec[2])
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	rating, err := domain.ParseRating(rec[3])
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	e := domain.TaskLogEntry{Date: date, Task: rec[1], Completed: completed, Rating: rating}
	if err := e.Validate(); err != nil {
		return domain.TaskLogEntry{}, err
	}
	return e, nil
}
