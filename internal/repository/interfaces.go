package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/domain"
)

var (
	ErrIndexOutOfRange = errors.New("entry index out of range")
	ErrCorruptLog      = errors.New("log storage is corrupt")
)

// EntryRepo is the ordered store of task log entries. Insertion order is
// significant: positions passed to Delete index into the sequence All
// returns.
type EntryRepo interface {
	Append(ctx context.Context, e domain.TaskLogEntry) error
	// AppendAll appends every entry or none of them.
	AppendAll(ctx context.Context, entries []domain.TaskLogEntry) error
	Delete(ctx context.Context, index int) error
	All(ctx context.Context) ([]domain.TaskLogEntry, error)
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, log has %d entries", ErrIndexOutOfRange, index, length)
}
