package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

type logService struct {
	entries  repository.EntryRepo
	observer UseCaseObserver
}

func NewLogService(entries repository.EntryRepo, observers ...UseCaseObserver) LogService {
	return &logService{entries: entries, observer: useCaseObserverOrNoop(observers)}
}

func (s *logService) Log(ctx context.Context, req contract.LogRequest) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"backfill": req.AllowBackfill}
	defer observe(ctx, s.observer, "log-entry", startedAt, fields, &err)

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	e := req.Entry
	e.Date = domain.NormalizeDate(e.Date)
	if err = e.Validate(); err != nil {
		return err
	}
	if err = domain.CheckBackfill(e.Date, now, req.AllowBackfill); err != nil {
		return err
	}
	fields["date"] = domain.FormatDate(e.Date)
	fields["completed"] = e.Completed

	if err = s.entries.Append(ctx, e); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

func (s *logService) List(ctx context.Context) ([]domain.TaskLogEntry, error) {
	return s.entries.All(ctx)
}

func (s *logService) Delete(ctx context.Context, index int) (deleted domain.TaskLogEntry, err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "delete-entry", startedAt, map[string]any{"index": index}, &err)

	all, err := s.entries.All(ctx)
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	if index >= 0 && index < len(all) {
		deleted = all[index]
	}
	if err = s.entries.Delete(ctx, index); err != nil {
		return domain.TaskLogEntry{}, err
	}
	return deleted, nil
}

func (s *logService) Import(ctx context.Context, entries []domain.TaskLogEntry) (res *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"entries": len(entries)}
	defer observe(ctx, s.observer, "import-entries", startedAt, fields, &err)

	batch := make([]domain.TaskLogEntry, 0, len(entries))
	for i, e := range entries {
		e.Date = domain.NormalizeDate(e.Date)
		if err = e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		batch = append(batch, e)
	}
	if len(batch) > 0 {
		if err = s.entries.AppendAll(ctx, batch); err != nil {
			return nil, fmt.Errorf("appending imported entries: %w", err)
		}
	}

	all, err := s.entries.All(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.ImportResult{Imported: len(batch), Total: len(all)}, nil
}
