package service

import (
	"context"
	"testing"
	"time"

	"flush-planner/internal/model"
)

func yesterdayMarker(f *plannerFixture) {
	f.markers.SetLastSeenDate(testUser, f.now.AddDate(0, 0, -1).Format(markerDateLayout))
}

func TestRolloverArchivesUncompletedAndClearsEverything(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local))
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		if _, err := f.planner.Add(ctx, text, nil, nil, nil); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	done, err := f.planner.Add(ctx, "finished but unflushed", nil, nil, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.planner.Toggle(ctx, done.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	yesterdayMarker(f)

	rolled, err := f.planner.RolloverIfNeeded(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !rolled {
		t.Fatal("expected a rollover to run")
	}

	if len(f.planner.Tasks()) != 0 || f.tasks.count() != 0 {
		t.Fatal("the whole active set must be cleared")
	}

	entries := f.history.all()
	if len(entries) != 3 {
		t.Fatalf("expected 3 history entries for uncompleted tasks, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Completed {
			t.Fatalf("rollover entries must have completed=false: %+v", entry)
		}
		if entry.Text == "finished but unflushed" {
			t.Fatal("completed-but-unflushed tasks are discarded without history")
		}
	}

	marker, _ := f.markers.LastSeenDate(testUser)
	if marker != f.now.Format(markerDateLayout) {
		t.Fatalf("marker must equal today, got %q", marker)
	}
}

func TestRolloverIsIdempotentAgainstDoubleTriggers(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local))
	ctx := context.Background()

	if _, err := f.planner.Add(ctx, "only once", nil, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	yesterdayMarker(f)

	if _, err := f.planner.RolloverIfNeeded(ctx); err != nil {
		t.Fatalf("first rollover: %v", err)
	}
	rolled, err := f.planner.RolloverIfNeeded(ctx)
	if err != nil {
		t.Fatalf("second rollover: %v", err)
	}
	if rolled {
		t.Fatal("the duplicate trigger must be a no-op")
	}
	if len(f.history.all()) != 1 {
		t.Fatalf("expected exactly one history entry, got %d", len(f.history.all()))
	}
}

func TestRolloverClearsReminderState(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 18, 10, 0, 0, time.Local))
	ctx := context.Background()

	if _, err := f.planner.Add(ctx, "meeting", strPtr("18:00"), strPtr("18:30"), nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.planner.ScanReminders()
	if len(f.planner.Reminders()) != 1 {
		t.Fatal("expected a pending reminder before rollover")
	}
	yesterdayMarker(f)

	if _, err := f.planner.RolloverIfNeeded(ctx); err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if len(f.planner.Reminders()) != 0 || len(f.planner.notified) != 0 {
		t.Fatal("rollover must clear pending reminders and the notified set")
	}
}

func TestRolloverContinuesPastIndividualArchiveFailures(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local))
	ctx := context.Background()

	for _, text := range []string{"ok-1", "broken", "ok-2"} {
		if _, err := f.planner.Add(ctx, text, nil, nil, nil); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	f.history.failTexts = map[string]bool{"broken": true}
	yesterdayMarker(f)

	rolled, err := f.planner.RolloverIfNeeded(ctx)
	if !rolled {
		t.Fatal("rollover must still run")
	}
	if err == nil {
		t.Fatal("a partial archive must be reported")
	}
	if len(f.history.all()) != 2 {
		t.Fatalf("the other tasks must still be archived, got %d entries", len(f.history.all()))
	}
	if f.tasks.count() != 0 {
		t.Fatal("the active set is cleared regardless")
	}
}

func TestRolloverArchivesTasksAddedOutsideThisSession(t *testing.T) {
	// A long-running watch session holds a mirror that never saw a row
	// another process inserted. Rollover deletes every store row, so it
	// must archive from a fresh store listing, not the mirror.
	f := newFixture(time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local))
	ctx := context.Background()

	if _, err := f.planner.Add(ctx, "seen by this session", nil, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	foreign := model.Task{ID: "outside", UserID: testUser, Text: "added by another process"}
	if err := f.tasks.Create(ctx, &foreign); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	yesterdayMarker(f)

	rolled, err := f.planner.RolloverIfNeeded(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !rolled {
		t.Fatal("expected a rollover to run")
	}

	entries := f.history.all()
	if len(entries) != 2 {
		t.Fatalf("every deleted row must be archived, got %d entries", len(entries))
	}
	found := false
	for _, entry := range entries {
		if entry.OriginalTaskID == foreign.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("the row unknown to the mirror must have its own history entry")
	}
	if f.tasks.count() != 0 {
		t.Fatal("the store must still be emptied")
	}
}

func TestFirstSessionOnlyRecordsMarker(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local))
	ctx := context.Background()

	if _, err := f.planner.Add(ctx, "fresh install", nil, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	rolled, err := f.planner.RolloverIfNeeded(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if rolled {
		t.Fatal("a missing marker must not trigger an archive")
	}
	if len(f.planner.Tasks()) != 1 || len(f.history.all()) != 0 {
		t.Fatal("tasks must survive the first session check")
	}
	marker, _ := f.markers.LastSeenDate(testUser)
	if marker != "2026-09-01" {
		t.Fatalf("marker must be recorded, got %q", marker)
	}
}
