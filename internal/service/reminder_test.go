package service

import (
	"context"
	"testing"
	"time"
)

func TestScanRaisesInsideWindowAtMostOnce(t *testing.T) {
	// End 18:30 means a window of [17:59, 18:30].
	f := newFixture(time.Date(2026, 9, 1, 17, 30, 0, 0, time.Local))
	task, err := f.planner.Add(context.Background(), "牛乳を買う", strPtr("18:00"), strPtr("18:30"), intPtr(2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	f.planner.ScanReminders() // 17:30, before the window
	if len(f.planner.Reminders()) != 0 {
		t.Fatal("no reminder may fire before the window opens")
	}

	f.now = time.Date(2026, 9, 1, 18, 5, 0, 0, time.Local)
	f.planner.ScanReminders()
	if got := f.planner.Reminders(); len(got) != 1 || got[0].ID != task.ID {
		t.Fatalf("expected one reminder for the task, got %v", got)
	}

	// Repeated scans inside the window stay idempotent.
	f.planner.ScanReminders()
	f.planner.ScanReminders()
	if len(f.planner.Reminders()) != 1 {
		t.Fatal("a task is reminded at most once")
	}
	if len(f.events.raised) != 1 {
		t.Fatalf("expected one raised event, got %d", len(f.events.raised))
	}
}

func TestScanWindowEdges(t *testing.T) {
	cases := []struct {
		name   string
		at     time.Time
		raised bool
	}{
		{"one minute slack before lead moment", time.Date(2026, 9, 1, 17, 59, 0, 0, time.Local), true},
		{"just before slack", time.Date(2026, 9, 1, 17, 58, 59, 0, time.Local), false},
		{"exactly the end moment", time.Date(2026, 9, 1, 18, 30, 0, 0, time.Local), true},
		{"after the end moment", time.Date(2026, 9, 1, 18, 31, 0, 0, time.Local), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.at)
			if _, err := f.planner.Add(context.Background(), "task", strPtr("18:00"), strPtr("18:30"), nil); err != nil {
				t.Fatalf("add: %v", err)
			}
			f.planner.ScanReminders()
			if got := len(f.planner.Reminders()) == 1; got != tc.raised {
				t.Fatalf("at %v expected raised=%v", tc.at, tc.raised)
			}
		})
	}
}

func TestScanNeverRemindsTaskWhoseWindowAlreadyClosed(t *testing.T) {
	// A task created after its own end time sees a window anchored on
	// today that has already closed, and is silently never reminded.
	f := newFixture(time.Date(2026, 9, 1, 19, 0, 0, 0, time.Local))
	if _, err := f.planner.Add(context.Background(), "already past", strPtr("10:00"), strPtr("10:30"), nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	f.planner.ScanReminders()
	if len(f.planner.Reminders()) != 0 {
		t.Fatal("a closed window must not produce a reminder")
	}
}

func TestScanSkipsCompletedAndUnparsableTasks(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 18, 10, 0, 0, time.Local))
	ctx := context.Background()

	done, err := f.planner.Add(ctx, "done already", strPtr("18:00"), strPtr("18:30"), nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.planner.Toggle(ctx, done.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	garbled, err := f.planner.Add(ctx, "garbled", strPtr("18:00"), strPtr("not-a-time"), nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	f.planner.ScanReminders()
	if len(f.planner.Reminders()) != 0 {
		t.Fatal("completed and unparsable tasks must be skipped")
	}

	// The garbled task was not marked notified; a later scan retries it.
	if _, marked := f.planner.notified[garbled.ID]; marked {
		t.Fatal("unparsable tasks must not enter the notified set")
	}
}

func TestDismissKeepsTaskInNotifiedSet(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 18, 10, 0, 0, time.Local))
	task, err := f.planner.Add(context.Background(), "meeting", strPtr("18:00"), strPtr("18:30"), nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	f.planner.ScanReminders()
	f.planner.DismissReminder(task.ID)

	if len(f.planner.Reminders()) != 0 {
		t.Fatal("dismissal must clear the pending reminder")
	}

	f.planner.ScanReminders()
	if len(f.planner.Reminders()) != 0 {
		t.Fatal("a dismissed task must not be reminded again today")
	}
	if len(f.events.dismissed) != 1 || f.events.dismissed[0] != task.ID {
		t.Fatalf("expected one dismissed event for %s", task.ID)
	}
}
