package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"flush-planner/internal/model"
)

var errStoreDown = errors.New("store unavailable")

type fakeTaskStore struct {
	mu         sync.Mutex
	tasks      []model.Task
	failCreate bool
	failDelete bool
}

func (s *fakeTaskStore) Create(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate {
		return errStoreDown
	}
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *fakeTaskStore) ListByUser(_ context.Context, userID string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	// Newest first, matching the repository's created_at DESC order.
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].UserID == userID {
			out = append(out, s.tasks[i])
		}
	}
	return out, nil
}

func (s *fakeTaskStore) UpdateFields(_ context.Context, userID, id string, text string, startTime, endTime *string, importance *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].UserID == userID && s.tasks[i].ID == id {
			s.tasks[i].Text = text
			s.tasks[i].StartTime = startTime
			s.tasks[i].EndTime = endTime
			s.tasks[i].Importance = importance
		}
	}
	return nil
}

func (s *fakeTaskStore) SetCompleted(_ context.Context, userID, id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].UserID == userID && s.tasks[i].ID == id {
			s.tasks[i].Completed = completed
		}
	}
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errStoreDown
	}
	for i := range s.tasks {
		if s.tasks[i].UserID == userID && s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeTaskStore) DeleteAllByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []model.Task
	for _, task := range s.tasks {
		if task.UserID != userID {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	return nil
}

func (s *fakeTaskStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type fakeHistoryStore struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	// failTexts makes Create fail for entries with these texts, to
	// exercise partial-failure paths.
	failTexts map[string]bool
	// onCreate, when set, runs just before an entry is appended. Lets a
	// test interleave other planner work with an in-flight archive.
	onCreate func()
}

func (s *fakeHistoryStore) Create(_ context.Context, entry *model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTexts[entry.Text] {
		return errStoreDown
	}
	if s.onCreate != nil {
		s.onCreate()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeHistoryStore) ListPage(_ context.Context, userID string, offset, limit int) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.HistoryEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			all = append(all, entry)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CompletedAt.After(all[j].CompletedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *fakeHistoryStore) CountByUser(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, entry := range s.entries {
		if entry.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *fakeHistoryStore) all() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

type fakeFavoriteStore struct {
	mu        sync.Mutex
	favorites []model.FavoriteTask
}

func (s *fakeFavoriteStore) Create(_ context.Context, favorite *model.FavoriteTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = append(s.favorites, *favorite)
	return nil
}

func (s *fakeFavoriteStore) ListByUser(_ context.Context, userID string) ([]model.FavoriteTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.FavoriteTask
	for _, favorite := range s.favorites {
		if favorite.UserID == userID {
			out = append(out, favorite)
		}
	}
	return out, nil
}

func (s *fakeFavoriteStore) FindByID(_ context.Context, userID, id string) (*model.FavoriteTask, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, favorite := range s.favorites {
		if favorite.UserID == userID && favorite.ID == id {
			f := favorite
			return &f, true, nil
		}
	}
	return nil, false, nil
}

func (s *fakeFavoriteStore) FindByText(_ context.Context, userID, text string) (*model.FavoriteTask, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, favorite := range s.favorites {
		if favorite.UserID == userID && favorite.Text == text {
			f := favorite
			return &f, true, nil
		}
	}
	return nil, false, nil
}

func (s *fakeFavoriteStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.favorites {
		if s.favorites[i].UserID == userID && s.favorites[i].ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMarkerStore struct {
	mu      sync.Mutex
	markers map[string]string
}

func newFakeMarkerStore() *fakeMarkerStore {
	return &fakeMarkerStore{markers: make(map[string]string)}
}

func (s *fakeMarkerStore) LastSeenDate(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers[userID], nil
}

func (s *fakeMarkerStore) SetLastSeenDate(userID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[userID] = date
	return nil
}

// recordingEvents captures outbound events for assertions.
type recordingEvents struct {
	mu        sync.Mutex
	raised    []string
	dismissed []string
	changed   int
}

func (e *recordingEvents) ReminderRaised(task model.Task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.raised = append(e.raised, task.ID)
}

func (e *recordingEvents) ReminderDismissed(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dismissed = append(e.dismissed, taskID)
}

func (e *recordingEvents) TaskListChanged() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.changed++
}

func (e *recordingEvents) HistoryPageLoaded(int) {}

const testUser = "u1"

type plannerFixture struct {
	planner *Planner
	tasks   *fakeTaskStore
	history *fakeHistoryStore
	markers *fakeMarkerStore
	events  *recordingEvents
	now     time.Time
}

func newFixture(now time.Time) *plannerFixture {
	f := &plannerFixture{
		tasks:   &fakeTaskStore{},
		history: &fakeHistoryStore{},
		markers: newFakeMarkerStore(),
		events:  &recordingEvents{},
		now:     now,
	}
	f.planner = NewPlanner(f.tasks, f.history, f.markers, f.events, testUser)
	f.planner.now = func() time.Time { return f.now }
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
