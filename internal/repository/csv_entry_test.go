package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVEntryRepo_WritesHeaderAndRows(t *testing.T) {
	path := testutil.TempCSVPath(t)
	repo := NewCSVEntryRepo(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(testutil.Day(2024, 1, 1), testutil.WithRating(7))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(testutil.Day(2024, 1, 2), testutil.Missed())))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,task,completed,rating\n"+
		"2024-01-01,Daily task,true,7\n"+
		"2024-01-02,Daily task,false,5\n", string(raw))
}

func TestCSVEntryRepo_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "tasks.csv")
	repo := NewCSVEntryRepo(path)
	require.NoError(t, repo.Append(context.Background(), testutil.NewTestEntry(testutil.Day(2024, 1, 1))))
	assert.FileExists(t, path)
}

func TestCSVEntryRepo_CorruptFile(t *testing.T) {
	path := testutil.TempCSVPath(t)
	require.NoError(t, os.WriteFile(path, []byte("date,task,completed,rating\n2024-01-01,x,true,eleven\n"), 0644))
	repo := NewCSVEntryRepo(path)
	ctx := context.Background()

	_, err := repo.All(ctx)
	assert.ErrorIs(t, err, ErrCorruptLog)

	err = repo.Append(ctx, testutil.NewTestEntry(testutil.Day(2024, 1, 2)))
	assert.ErrorIs(t, err, ErrCorruptLog, "a corrupt log must not be overwritten")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "eleven")
}

func TestCSVEntryRepo_EmptyFileIsEmptyLog(t *testing.T) {
	path := testutil.TempCSVPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	entries, err := NewCSVEntryRepo(path).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVEntryRepo_NoTempFilesLeftBehind(t *testing.T) {
	path := testutil.TempCSVPath(t)
	repo := NewCSVEntryRepo(path)
	ctx := context.Background()
	require.NoError(t, repo.AppendAll(ctx, testutil.EntryRun(testutil.Day(2024, 1, 1), 3)))
	require.NoError(t, repo.Delete(ctx, 1))

	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "tasks.csv", files[0].Name())
}

func TestCSVEntryRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCSVEntryRepo(testutil.TempCSVPath(t)).All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
