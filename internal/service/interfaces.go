package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
)

type LogService interface {
	// Log validates and appends one entry.
	Log(ctx context.Context, req contract.LogRequest) error
	List(ctx context.Context) ([]domain.TaskLogEntry, error)
	// Delete removes the entry at index and returns it.
	Delete(ctx context.Context, index int) (domain.TaskLogEntry, error)
	// Import validates every entry first and appends all of them or none.
	Import(ctx context.Context, entries []domain.TaskLogEntry) (*contract.ImportResult, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}
