package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/logfile"
)

// CSVEntryRepo keeps the whole log in a single CSV file. Every call reads
// the file in full and every mutation rewrites it in full.
type CSVEntryRepo struct {
	path string
}

func NewCSVEntryRepo(path string) *CSVEntryRepo {
	return &CSVEntryRepo{path: path}
}

// Path returns the backing file location.
func (r *CSVEntryRepo) Path() string { return r.path }

func (r *CSVEntryRepo) Append(ctx context.Context, e domain.TaskLogEntry) error {
	return r.AppendAll(ctx, []domain.TaskLogEntry{e})
}

func (r *CSVEntryRepo) AppendAll(ctx context.Context, entries []domain.TaskLogEntry) error {
	current, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.save(append(current, entries...))
}

func (r *CSVEntryRepo) Delete(ctx context.Context, index int) error {
	current, err := r.All(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(current) {
		return outOfRange(index, len(current))
	}
	return r.save(slices.Delete(current, index, index+1))
}

// All loads the file. A missing file is an empty log; a file that cannot
// be decoded wraps ErrCorruptLog.
func (r *CSVEntryRepo) All(ctx context.Context) ([]domain.TaskLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	entries, err := logfile.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptLog, r.path, err)
	}
	return entries, nil
}

// save writes to a temp file beside the log and renames it into place so
// a failed write leaves the previous file intact.
func (r *CSVEntryRepo) save(entries []domain.TaskLogEntry) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tally-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp log file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := logfile.Encode(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("writing log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp log file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replacing log file: %w", err)
	}
	committed = true
	return nil
}
