package validation

import (
	"testing"

	"github.com/rdelgatto/habitkit/internal/models"
)

func TestValidate_CleanData(t *testing.T) {
	validator := New()

	catID := "1"
	habits := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium,
			CompletedDates: []string{"2024-03-10", "2024-03-11"}, Streak: 2, CategoryID: &catID},
	}
	categories := []models.Category{{ID: "1", Name: "Health"}}

	result := validator.Validate(habits, categories)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %v", result.Conflicts)
	}
}

func TestValidate_DuplicateHabitIDs(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium},
		{ID: "h1", Name: "Swim", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium},
	}

	result := validator.Validate(habits, nil)
	if !result.HasConflicts() {
		t.Fatal("expected to detect duplicate habit ids")
	}

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictDuplicateHabitID {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected ConflictDuplicateHabitID conflict type")
	}
}

func TestValidate_CompletionDates(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{
			ID: "h1", Name: "Run", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium,
			CompletedDates: []string{"2024-03-10", "2024-03-10"}, // duplicate
			Streak:         1,
		},
		{
			ID: "h2", Name: "Swim", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium,
			CompletedDates: []string{"not-a-date"}, // malformed
		},
	}

	result := validator.Validate(habits, nil)

	var dup, invalid int
	for _, conflict := range result.Conflicts {
		switch conflict.Type {
		case ConflictDuplicateDate:
			dup++
		case ConflictInvalidDate:
			invalid++
		}
	}
	if dup != 1 {
		t.Errorf("expected 1 duplicate-date conflict, got %d", dup)
	}
	if invalid != 1 {
		t.Errorf("expected 1 invalid-date conflict, got %d", invalid)
	}
}

func TestValidate_DanglingCategory(t *testing.T) {
	validator := New()

	missing := "nope"
	habits := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium, CategoryID: &missing},
	}
	categories := []models.Category{{ID: "1", Name: "Health"}}

	result := validator.Validate(habits, categories)
	if !result.HasConflicts() {
		t.Fatal("expected to detect dangling category reference")
	}
	if result.Conflicts[0].Type != ConflictDanglingCategory {
		t.Errorf("expected ConflictDanglingCategory, got %s", result.Conflicts[0].Type)
	}
}

func TestValidate_StreakMismatch(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyDaily, Priority: models.PriorityMedium,
			CompletedDates: []string{"2024-03-10"}, Streak: 5},
	}

	result := validator.Validate(habits, nil)
	if !result.HasConflicts() {
		t.Fatal("expected to detect streak larger than completion count")
	}
	if result.Conflicts[0].Type != ConflictStreakMismatch {
		t.Errorf("expected ConflictStreakMismatch, got %s", result.Conflicts[0].Type)
	}
}
