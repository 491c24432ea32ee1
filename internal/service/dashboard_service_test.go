package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/stats"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_StreakScenario(t *testing.T) {
	repo := newCSVRepo(t)
	svc := NewDashboardService(repo)
	ctx := context.Background()
	require.NoError(t, repo.AppendAll(ctx, testutil.EntryRun(testutil.Day(2024, 1, 1), 3)))

	resp, err := svc.Dashboard(ctx, contract.NewDashboardRequest(testutil.Day(2024, 1, 3)))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Summary.CurrentStreak)
	assert.Equal(t, 3, resp.Summary.Completed)

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(testutil.Day(2024, 1, 4), testutil.Missed())))
	resp, err = svc.Dashboard(ctx, contract.NewDashboardRequest(testutil.Day(2024, 1, 4)))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.CurrentStreak)
	assert.Equal(t, 3, resp.Summary.LongestStreak)
	assert.Equal(t, 1, resp.Summary.Missed)
}

func TestDashboard_DaysSortedWithinMonth(t *testing.T) {
	repo := newCSVRepo(t)
	svc := NewDashboardService(repo)
	ctx := context.Background()
	require.NoError(t, repo.AppendAll(ctx, []domain.TaskLogEntry{
		testutil.NewTestEntry(testutil.Day(2024, 2, 9)),
		testutil.NewTestEntry(testutil.Day(2024, 1, 31)),
		testutil.NewTestEntry(testutil.Day(2024, 2, 2), testutil.Missed()),
		testutil.NewTestEntry(testutil.Day(2024, 2, 2)),
	}))

	req := contract.NewDashboardRequest(testutil.Day(2024, 2, 10))
	resp, err := svc.Dashboard(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []contract.DayRow{
		{Date: testutil.Day(2024, 2, 2), Completed: 1, Missed: 1},
		{Date: testutil.Day(2024, 2, 9), Completed: 1},
	}, resp.Days)
	assert.Equal(t, 10, resp.Progress.DaysMeasured)
	assert.Equal(t, 2, resp.Progress.Done)
	assert.Equal(t, 4, resp.Summary.Total)
}

func TestDashboard_EmptyMonth(t *testing.T) {
	svc := NewDashboardService(newCSVRepo(t))
	req := contract.NewDashboardRequest(testutil.Day(2024, 3, 15))

	resp, err := svc.Dashboard(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.Equal(t, stats.Summary{}, resp.Summary)
	assert.Equal(t, 0.0, resp.Summary.AverageRating)
}

func TestDashboard_PolicyIsApplied(t *testing.T) {
	repo := newCSVRepo(t)
	svc := NewDashboardService(repo)
	ctx := context.Background()
	require.NoError(t, repo.AppendAll(ctx, testutil.EntryRun(testutil.Day(2024, 1, 1), 2)))

	req := contract.NewDashboardRequest(testutil.Day(2024, 1, 3))
	req.Policy = stats.StreakPolicy{Anchor: stats.AnchorToday, TodayGrace: false}
	resp, err := svc.Dashboard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.CurrentStreak)

	req.Policy.TodayGrace = true
	resp, err = svc.Dashboard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Summary.CurrentStreak)
}

func TestDashboard_InvalidRequest(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewDashboardService(newCSVRepo(t), obs)
	ctx := context.Background()

	req := contract.NewDashboardRequest(testutil.Day(2024, 1, 3))
	req.Month = 13
	_, err := svc.Dashboard(ctx, req)
	var dashErr *contract.DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, contract.DashboardErrInvalidMonth, dashErr.Code)
	assert.False(t, obs.last().Success)

	req = contract.NewDashboardRequest(testutil.Day(2024, 1, 3))
	req.DailyTarget = 0
	_, err = svc.Dashboard(ctx, req)
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, contract.DashboardErrInvalidTarget, dashErr.Code)
}

func TestDashboard_CorruptLogSurfaces(t *testing.T) {
	path := testutil.TempCSVPath(t)
	require.NoError(t, os.WriteFile(path, []byte("nonsense\n"), 0644))
	svc := NewDashboardService(repository.NewCSVEntryRepo(path))

	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := svc.Dashboard(context.Background(), contract.NewDashboardRequest(now))
	assert.ErrorIs(t, err, repository.ErrCorruptLog)
}
