// Package exchange moves task logs in and out of tally as CSV or XLSX files.
package exchange

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/logfile"
	"github.com/alexanderramin/tally/internal/stats"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want csv or xlsx)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Export writes entries in the given format. The summary is only used by
// formats that have room for it.
func Export(w io.Writer, format Format, entries []domain.TaskLogEntry, summary stats.Summary) error {
	switch format {
	case FormatCSV:
		return logfile.Encode(w, entries)
	case FormatXLSX:
		return WriteXLSX(w, entries, summary)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Import reads entries written by Export.
func Import(r io.Reader, format Format) ([]domain.TaskLogEntry, error) {
	switch format {
	case FormatCSV:
		return logfile.Decode(r)
	case FormatXLSX:
		return ReadXLSX(r)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
