// Package validation scans loaded collections for integrity problems the
// engine's invariants should rule out: duplicate ids, duplicate or
// malformed completion dates, dangling category references, and streak
// values no toggle sequence could produce. It is read-only; fixes are the
// user's call.
package validation

import (
	"fmt"
	"time"

	"github.com/rdelgatto/habitkit/internal/constants"
	"github.com/rdelgatto/habitkit/internal/models"
)

type ConflictType string

const (
	ConflictDuplicateHabitID    ConflictType = "duplicate_habit_id"
	ConflictDuplicateCategoryID ConflictType = "duplicate_category_id"
	ConflictDuplicateDate       ConflictType = "duplicate_date"
	ConflictInvalidDate         ConflictType = "invalid_date"
	ConflictDanglingCategory    ConflictType = "dangling_category"
	ConflictInvalidField        ConflictType = "invalid_field"
	ConflictStreakMismatch      ConflictType = "streak_mismatch"
)

type Conflict struct {
	Type    ConflictType
	HabitID string
	Message string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate checks both collections and the references between them.
func (v *Validator) Validate(habits []models.Habit, categories []models.Category) ValidationResult {
	var result ValidationResult

	categoryIDs := make(map[string]bool)
	for _, c := range categories {
		if categoryIDs[c.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateCategoryID,
				Message: fmt.Sprintf("category id %q appears more than once", c.ID),
			})
		}
		categoryIDs[c.ID] = true
	}

	habitIDs := make(map[string]bool)
	for _, h := range habits {
		if habitIDs[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateHabitID,
				HabitID: h.ID,
				Message: fmt.Sprintf("habit id %q appears more than once", h.ID),
			})
		}
		habitIDs[h.ID] = true

		result.Conflicts = append(result.Conflicts, v.checkHabit(h, categoryIDs)...)
	}

	return result
}

func (v *Validator) checkHabit(h models.Habit, categoryIDs map[string]bool) []Conflict {
	var conflicts []Conflict

	if !h.Frequency.Valid() {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictInvalidField,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q has unknown frequency %q", h.Name, h.Frequency),
		})
	}
	if !h.Priority.Valid() {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictInvalidField,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q has unknown priority %q", h.Name, h.Priority),
		})
	}
	if h.TimeOfDay != nil && !h.TimeOfDay.Valid() {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictInvalidField,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q has unknown time of day %q", h.Name, *h.TimeOfDay),
		})
	}

	seen := make(map[string]bool)
	for _, d := range h.CompletedDates {
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidDate,
				HabitID: h.ID,
				Message: fmt.Sprintf("habit %q has malformed completion date %q", h.Name, d),
			})
			continue
		}
		if seen[d] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDuplicateDate,
				HabitID: h.ID,
				Message: fmt.Sprintf("habit %q completed twice on %s", h.Name, d),
			})
		}
		seen[d] = true
	}

	if h.CategoryID != nil && !categoryIDs[*h.CategoryID] {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictDanglingCategory,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q references missing category %q", h.Name, *h.CategoryID),
		})
	}

	if h.Streak < 0 {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictStreakMismatch,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q has negative streak %d", h.Name, h.Streak),
		})
	}
	if h.Streak > len(h.CompletedDates) {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictStreakMismatch,
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q has streak %d but only %d completions", h.Name, h.Streak, len(h.CompletedDates)),
		})
	}

	return conflicts
}
