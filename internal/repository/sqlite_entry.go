package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/google/uuid"
)

// SQLiteEntryRepo implements EntryRepo on the task_log_entries table.
// Insertion order is kept in the seq column.
type SQLiteEntryRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteEntryRepo creates a repo whose batch writes run inside uow.
func NewSQLiteEntryRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: database, uow: uow}
}

// NewSQLiteEntryRepoTx creates a repo bound to an open transaction.
func NewSQLiteEntryRepoTx(tx db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: tx}
}

func (r *SQLiteEntryRepo) Append(ctx context.Context, e domain.TaskLogEntry) error {
	query := `INSERT INTO task_log_entries (id, seq, date, task, completed, rating, created_at)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ? FROM task_log_entries`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		domain.FormatDate(e.Date),
		e.Task,
		boolToInt(e.Completed),
		e.Rating,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) AppendAll(ctx context.Context, entries []domain.TaskLogEntry) error {
	if r.uow == nil {
		return r.appendEach(ctx, entries)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteEntryRepoTx(tx).appendEach(ctx, entries)
	})
}

func (r *SQLiteEntryRepo) appendEach(ctx context.Context, entries []domain.TaskLogEntry) error {
	for i, e := range entries {
		if err := r.Append(ctx, e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, index int) error {
	if index >= 0 {
		query := `DELETE FROM task_log_entries WHERE id = (
			SELECT id FROM task_log_entries ORDER BY seq LIMIT 1 OFFSET ?)`
		res, err := r.db.ExecContext(ctx, query, index)
		if err != nil {
			return fmt.Errorf("deleting log entry: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting log entry: %w", err)
		}
		if n == 1 {
			return nil
		}
	}

	count, err := r.count(ctx)
	if err != nil {
		return err
	}
	return outOfRange(index, count)
}

func (r *SQLiteEntryRepo) All(ctx context.Context) ([]domain.TaskLogEntry, error) {
	query := `SELECT date, task, completed, rating FROM task_log_entries ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_log_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting log entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]domain.TaskLogEntry, error) {
	var entries []domain.TaskLogEntry
	for rows.Next() {
		var e domain.TaskLogEntry
		var dateStr string
		var completed int
		if err := rows.Scan(&dateStr, &e.Task, &completed, &e.Rating); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		d, err := time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing date %q: %w", ErrCorruptLog, dateStr, err)
		}
		e.Date = d
		e.Completed = intToBool(completed)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entries: %w", err)
	}
	return entries, nil
}

// Compile-time interface checks.
var (
	_ EntryRepo = (*CSVEntryRepo)(nil)
	_ EntryRepo = (*SQLiteEntryRepo)(nil)
)
