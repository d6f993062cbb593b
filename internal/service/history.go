package service

import (
	"context"
	"fmt"
	"sync"

	"flush-planner/internal/model"
)

// HistoryPageSize is how many archived entries one page holds.
const HistoryPageSize = 10

// HistoryService reads the append-only archive, newest first, one page at a
// time. It keeps the accumulated entries for load-more style consumption.
type HistoryService struct {
	store  HistoryStore
	events Events
	userID string

	mu      sync.Mutex
	entries []model.HistoryEntry
	page    int
	hasMore bool
	loading bool
}

func NewHistoryService(store HistoryStore, events Events, userID string) *HistoryService {
	if events == nil {
		events = NopEvents{}
	}
	return &HistoryService{
		store:   store,
		events:  events,
		userID:  userID,
		hasMore: true,
	}
}

// FetchPage returns one page of entries ordered by completion time
// descending, and whether more pages exist after it.
func (s *HistoryService) FetchPage(ctx context.Context, page int) ([]model.HistoryEntry, bool, error) {
	if page < 0 {
		return nil, false, fmt.Errorf("invalid page %d", page)
	}

	entries, err := s.store.ListPage(ctx, s.userID, page*HistoryPageSize, HistoryPageSize)
	if err != nil {
		return nil, false, fmt.Errorf("fetch history page: %w", err)
	}

	total, err := s.store.CountByUser(ctx, s.userID)
	if err != nil {
		// Fall back to the "short page means last page" heuristic.
		return entries, len(entries) == HistoryPageSize, nil
	}
	return entries, int64((page+1)*HistoryPageSize) < total, nil
}

// LoadMore fetches the next page and appends it. A call while a fetch is in
// flight, or after the last page was reached, does nothing.
func (s *HistoryService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	page := s.page
	s.mu.Unlock()

	entries, hasMore, err := s.FetchPage(ctx, page)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.entries = append(s.entries, entries...)
	s.page = page + 1
	s.hasMore = hasMore
	s.mu.Unlock()

	s.events.HistoryPageLoaded(len(entries))
	return nil
}

// Entries returns a copy of everything loaded so far.
func (s *HistoryService) Entries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]model.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// HasMore reports whether another page is known to exist.
func (s *HistoryService) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}
