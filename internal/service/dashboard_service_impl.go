package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/stats"
)

type dashboardService struct {
	entries  repository.EntryRepo
	observer UseCaseObserver
}

func NewDashboardService(entries repository.EntryRepo, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{entries: entries, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) Dashboard(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"year": req.Year, "month": int(req.Month)}
	defer observe(ctx, s.observer, "dashboard", startedAt, fields, &err)

	if req.Month < time.January || req.Month > time.December {
		return nil, &contract.DashboardError{
			Code:    contract.DashboardErrInvalidMonth,
			Message: fmt.Sprintf("month must be 1-12, got %d", req.Month),
		}
	}
	if req.DailyTarget <= 0 {
		return nil, &contract.DashboardError{
			Code:    contract.DashboardErrInvalidTarget,
			Message: fmt.Sprintf("daily target must be positive, got %d", req.DailyTarget),
		}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := domain.NormalizeDate(now)

	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log: %w", err)
	}
	fields["entries"] = len(entries)

	breakdown := stats.MonthlyBreakdown(entries, req.Year, req.Month)
	days := make([]contract.DayRow, 0, len(breakdown))
	for d, t := range breakdown {
		days = append(days, contract.DayRow{Date: d, Completed: t.Completed, Missed: t.Missed})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	return &contract.DashboardResponse{
		GeneratedAt: startedAt,
		Today:       today,
		Year:        req.Year,
		Month:       req.Month,
		Summary:     stats.Summarize(entries, today, req.Policy),
		Progress:    stats.MonthProgress(entries, req.Year, req.Month, today, req.DailyTarget),
		Days:        days,
	}, nil
}
