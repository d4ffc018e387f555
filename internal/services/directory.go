package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/banks-directory/internal/errs"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type bankFetcher interface {
	Fetch(ctx context.Context) ([]models.Bank, error)
}

// directoryService owns the directory snapshot. Only its fetch path writes;
// any number of readers observe whole snapshots.
type directoryService struct {
	fetcher bankFetcher
	now     func() time.Time

	current atomic.Pointer[models.Snapshot]

	mu      sync.Mutex // guards publishing and subs
	subs    map[int]chan models.Snapshot
	nextSub int
}

func NewDirectoryService(fetcher bankFetcher) *directoryService {
	s := &directoryService{
		fetcher: fetcher,
		now:     time.Now,
		subs:    make(map[int]chan models.Snapshot),
	}
	initial := models.InitialSnapshot()
	s.current.Store(&initial)
	return s
}

// Snapshot returns the latest published snapshot.
func (s *directoryService) Snapshot() models.Snapshot {
	return *s.current.Load()
}

// Start moves an uninitialized directory to loading and fetches once in the
// background. The fetch outlives ctx cancellation; ctx only supplies the
// logger. Calling Start again does nothing.
func (s *directoryService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Load().Phase != models.PhaseUninitialized {
		return nil
	}
	s.beginLocked(ctx)
	return nil
}

// Refresh starts a new fetch from a loaded or failed directory. The snapshot
// keeps the previous banks while the fetch runs and after it fails, but views
// render the loading or error state until a fetch succeeds.
func (s *directoryService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.current.Load().Phase {
	case models.PhaseLoading:
		return errs.NewConflictError("bank directory fetch already in progress")
	default:
		s.beginLocked(ctx)
		return nil
	}
}

// Subscribe returns a channel that immediately holds the current snapshot
// and then receives every later one. A reader that falls behind skips
// straight to the newest snapshot. cancel closes the channel.
func (s *directoryService) Subscribe() (<-chan models.Snapshot, func()) {
	ch := make(chan models.Snapshot, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- *s.current.Load()
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// Wait blocks until the directory is loaded or failed.
func (s *directoryService) Wait(ctx context.Context) (models.Snapshot, error) {
	updates, cancel := s.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		case snap := <-updates:
			if snap.Phase.Terminal() {
				return snap, nil
			}
		}
	}
}

func (s *directoryService) beginLocked(ctx context.Context) {
	generation := uuid.NewString()

	next := *s.current.Load()
	next.IsLoading = true
	next.IsError = false
	next.Phase = models.PhaseLoading
	next.Generation = generation
	next.UpdatedAt = s.now()
	s.publishLocked(next)

	log, ctx := logger.With(context.WithoutCancel(ctx), "fetch_id", generation)
	log.Info("bank directory fetch started")

	go s.run(ctx, generation)
}

func (s *directoryService) run(ctx context.Context, generation string) {
	log := logger.FromContext(ctx)
	banks, err := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current.Load()
	next.IsLoading = false
	next.Generation = generation
	next.UpdatedAt = s.now()

	if err != nil {
		log.Error("bank directory fetch failed", "error", err)
		next.IsError = true
		next.Phase = models.PhaseFailed
	} else {
		log.Info("bank directory loaded", "count", len(banks))
		if banks == nil {
			banks = []models.Bank{}
		}
		next.Banks = banks
		next.IsError = false
		next.Phase = models.PhaseLoaded
	}

	s.publishLocked(next)
}

func (s *directoryService) publishLocked(next models.Snapshot) {
	s.current.Store(&next)
	for _, ch := range s.subs {
		// drop the unread snapshot, keep only the newest
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}
