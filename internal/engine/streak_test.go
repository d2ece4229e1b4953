package engine

import (
	"testing"
	"time"

	"github.com/rdelgatto/habitkit/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func toggle(t *testing.T, e *Engine, id, date string) models.Habit {
	t.Helper()
	h, err := e.ToggleCompletion(id, day(date))
	if err != nil {
		t.Fatalf("failed to toggle %s on %s: %v", id, date, err)
	}
	return h
}

func TestStreakIncrementsOnConsecutiveDays(t *testing.T) {
	e := newTestEngine(t, newMemStore())
	h := addHabit(t, e, models.HabitForm{Name: "Run", Frequency: models.FrequencyDaily})

	got := toggle(t, e, h.ID, "2024-03-10")
	if got.Streak != 1 {
		t.Errorf("first completion: expected streak 1, got %d", got.Streak)
	}

	got = toggle(t, e, h.ID, "2024-03-11")
	if got.Streak != 2 {
		t.Errorf("consecutive completion: expected streak 2, got %d", got.Streak)
	}

	got = toggle(t, e, h.ID, "2024-03-12")
	if got.Streak != 3 {
		t.Errorf("third consecutive completion: expected streak 3, got %d", got.Streak)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	e := newTestEngine(t, newMemStore())
	h := addHabit(t, e, models.HabitForm{Name: "Run", Frequency: models.FrequencyDaily})

	toggle(t, e, h.ID, "2024-03-05")
	got := toggle(t, e, h.ID, "2024-03-10")
	if got.Streak != 1 {
		t.Errorf("completion after gap: expected streak 1, got %d", got.Streak)
	}
}

func TestToggleSameDateRoundTrips(t *testing.T) {
	e := newTestEngine(t, newMemStore())
	h := addHabit(t, e, models.HabitForm{Name: "Run", Frequency: models.FrequencyDaily})

	toggle(t, e, h.ID, "2024-03-09")
	before := toggle(t, e, h.ID, "2024-03-10")

	// Un-mark then re-mark the same date: membership and streak return
	// to their prior values.
	toggle(t, e, h.ID, "2024-03-10")
	after := toggle(t, e, h.ID, "2024-03-10")

	if after.Streak != before.Streak {
		t.Errorf("expected streak %d after round trip, got %d", before.Streak, after.Streak)
	}
	if len(after.CompletedDates) != len(before.CompletedDates) {
		t.Errorf("expected completions %v after round trip, got %v", before.CompletedDates, after.CompletedDates)
	}
	if !after.CompletedOn("2024-03-10") {
		t.Error("expected 2024-03-10 marked after round trip")
	}
}

func TestToggleRemovesDateWithoutDuplicates(t *testing.T) {
	e := newTestEngine(t, newMemStore())
	h := addHabit(t, e, models.HabitForm{Name: "Run", Frequency: models.FrequencyDaily})

	toggle(t, e, h.ID, "2024-03-10")
	got := toggle(t, e, h.ID, "2024-03-10")

	if len(got.CompletedDates) != 0 {
		t.Errorf("expected empty completions after un-mark, got %v", got.CompletedDates)
	}
	if got.CompletedOn("2024-03-10") {
		t.Error("expected date removed")
	}
}

// Pins the full create/toggle walkthrough. Un-marking the latest day of
// a two-day run decrements by one (2024-01-01 is the day before the
// un-marked 2024-01-02 and remains completed), leaving streak 1.
func TestScenarioRunHabit(t *testing.T) {
	e := newTestEngine(t, newMemStore())

	catID := "1"
	h := addHabit(t, e, models.HabitForm{
		Name:       "Run",
		Frequency:  models.FrequencyDaily,
		CategoryID: &catID,
		Priority:   models.PriorityMedium,
	})
	if h.Streak != 0 || len(h.CompletedDates) != 0 {
		t.Fatalf("fresh habit: expected zero streak and no completions, got %+v", h)
	}

	got := toggle(t, e, h.ID, "2024-01-01")
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != "2024-01-01" {
		t.Errorf("expected [2024-01-01], got %v", got.CompletedDates)
	}
	if got.Streak != 1 {
		t.Errorf("expected streak 1, got %d", got.Streak)
	}

	got = toggle(t, e, h.ID, "2024-01-02")
	if got.Streak != 2 {
		t.Errorf("expected streak 2, got %d", got.Streak)
	}

	// Un-mark 2024-01-02: 2024-01-01 remains and is yesterday relative
	// to the un-marked date, so the streak decrements from 2 to 1.
	got = toggle(t, e, h.ID, "2024-01-02")
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != "2024-01-01" {
		t.Errorf("expected [2024-01-01] after un-mark, got %v", got.CompletedDates)
	}
	if got.Streak != 1 {
		t.Errorf("expected streak 1 after un-mark, got %d", got.Streak)
	}
}

// The adjacency rule inspects only the day before the toggled date, so
// out-of-order toggling produces values that differ from the longest
// consecutive run. This is shipped behavior and must not be "fixed".
func TestStreakOutOfOrderQuirkPreserved(t *testing.T) {
	e := newTestEngine(t, newMemStore())
	h := addHabit(t, e, models.HabitForm{Name: "Run", Frequency: models.FrequencyDaily})

	toggle(t, e, h.ID, "2024-03-11")
	got := toggle(t, e, h.ID, "2024-03-10")

	// 2024-03-09 is not completed, so marking 2024-03-10 resets to 1 even
	// though the actual consecutive run 10..11 has length 2.
	if got.Streak != 1 {
		t.Errorf("expected streak 1 from backward toggle, got %d", got.Streak)
	}

	// Un-marking the middle of a three-day run only decrements by one.
	e2 := newTestEngine(t, newMemStore())
	h2 := addHabit(t, e2, models.HabitForm{Name: "Row", Frequency: models.FrequencyDaily})
	toggle(t, e2, h2.ID, "2024-03-10")
	toggle(t, e2, h2.ID, "2024-03-11")
	toggle(t, e2, h2.ID, "2024-03-12")
	got = toggle(t, e2, h2.ID, "2024-03-11")
	if got.Streak != 2 {
		t.Errorf("expected streak 2 after un-marking middle day, got %d", got.Streak)
	}
}
