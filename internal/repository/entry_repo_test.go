package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends runs the shared EntryRepo contract against every implementation.
func backends(t *testing.T) map[string]func(t *testing.T) EntryRepo {
	t.Helper()
	return map[string]func(t *testing.T) EntryRepo{
		"csv": func(t *testing.T) EntryRepo {
			return NewCSVEntryRepo(testutil.TempCSVPath(t))
		},
		"sqlite": func(t *testing.T) EntryRepo {
			database := testutil.NewTestDB(t)
			return NewSQLiteEntryRepo(database, testutil.NewTestUoW(database))
		},
	}
}

func TestEntryRepo_EmptyLog(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			entries, err := repo.All(context.Background())
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestEntryRepo_RoundTrip(t *testing.T) {
	day := testutil.Day(2024, 1, 1)
	want := testutil.EntryRun(day, 3)
	want[1].Task = "market research, part 2"
	want[1].Completed = false
	want[1].Rating = 0
	want[2].Rating = 10
	// Out-of-date-order append must stay in insertion order.
	want = append(want, testutil.NewTestEntry(day, testutil.WithTask("late entry")))

	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			for _, e := range want {
				require.NoError(t, repo.Append(ctx, e))
			}

			got, err := repo.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEntryRepo_DeleteKeepsRelativeOrder(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			entries := testutil.EntryRun(testutil.Day(2024, 1, 1), 3)
			require.NoError(t, repo.AppendAll(ctx, entries))

			require.NoError(t, repo.Delete(ctx, 0))

			got, err := repo.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, entries[1:], got)
		})
	}
}

func TestEntryRepo_DeleteMiddle(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			entries := testutil.EntryRun(testutil.Day(2024, 1, 1), 3)
			require.NoError(t, repo.AppendAll(ctx, entries))

			require.NoError(t, repo.Delete(ctx, 1))
			got, err := repo.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, []domain.TaskLogEntry{entries[0], entries[2]}, got)

			// Appending after a delete still goes to the end.
			extra := testutil.NewTestEntry(testutil.Day(2023, 12, 31))
			require.NoError(t, repo.Append(ctx, extra))
			got, err = repo.All(ctx)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, extra, got[2])
		})
	}
}

func TestEntryRepo_DeleteOutOfRange(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			entries := testutil.EntryRun(testutil.Day(2024, 1, 1), 2)
			require.NoError(t, repo.AppendAll(ctx, entries))

			for _, idx := range []int{-1, 2, 99} {
				err := repo.Delete(ctx, idx)
				assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
			}

			got, err := repo.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, entries, got, "failed delete must not mutate the log")
		})
	}
}

func TestEntryRepo_DeleteOnEmptyLog(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := newRepo(t).Delete(context.Background(), 0)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}
