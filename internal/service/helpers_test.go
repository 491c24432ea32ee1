package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/testutil"
)

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newCSVRepo(t *testing.T) repository.EntryRepo {
	t.Helper()
	return repository.NewCSVEntryRepo(testutil.TempCSVPath(t))
}
