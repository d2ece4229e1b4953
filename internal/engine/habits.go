package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rdelgatto/habitkit/internal/constants"
	"github.com/rdelgatto/habitkit/internal/models"
)

// AddHabit validates the form, assigns the generated fields (id, creation
// time, empty completions, zero streak) and appends the habit to the
// collection. Priority defaults to medium when unspecified. A missing
// category is accepted; category selection is a caller concern.
func (e *Engine) AddHabit(form models.HabitForm) (models.Habit, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return models.Habit{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !form.Frequency.Valid() {
		return models.Habit{}, &ValidationError{Field: "frequency", Reason: fmt.Sprintf("unknown value %q", form.Frequency)}
	}
	if form.TimeOfDay != nil && !form.TimeOfDay.Valid() {
		return models.Habit{}, &ValidationError{Field: "timeOfDay", Reason: fmt.Sprintf("unknown value %q", *form.TimeOfDay)}
	}
	priority := form.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Habit{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", priority)}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	habit := models.Habit{
		ID:             e.newID(),
		Name:           name,
		Description:    form.Description,
		Frequency:      form.Frequency,
		TimeOfDay:      form.TimeOfDay,
		CreatedAt:      e.now(),
		CompletedDates: []string{},
		Color:          form.Color,
		Icon:           form.Icon,
		CategoryID:     form.CategoryID,
		Reminder:       form.Reminder,
		Priority:       priority,
		Streak:         0,
	}

	updated := append(slices.Clone(e.habits), habit)
	if err := e.writeHabits(updated); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// UpdateHabit merges the patch onto the habit with the given id. The id
// and creation time are immutable; the patch cannot carry them.
func (e *Engine) UpdateHabit(id string, patch models.HabitPatch) (models.Habit, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Habit{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if patch.Frequency != nil && !patch.Frequency.Valid() {
		return models.Habit{}, &ValidationError{Field: "frequency", Reason: fmt.Sprintf("unknown value %q", *patch.Frequency)}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Habit{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", *patch.Priority)}
	}
	if patch.TimeOfDay != nil && !patch.TimeOfDay.Valid() {
		return models.Habit{}, &ValidationError{Field: "timeOfDay", Reason: fmt.Sprintf("unknown value %q", *patch.TimeOfDay)}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := slices.IndexFunc(e.habits, func(h models.Habit) bool { return h.ID == id })
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	h := e.habits[idx]
	if patch.Name != nil {
		h.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.ClearDescription {
		h.Description = ""
	}
	if patch.Frequency != nil {
		h.Frequency = *patch.Frequency
	}
	if patch.TimeOfDay != nil {
		h.TimeOfDay = patch.TimeOfDay
	}
	if patch.ClearTimeOfDay {
		h.TimeOfDay = nil
	}
	if patch.Color != nil {
		h.Color = *patch.Color
	}
	if patch.Icon != nil {
		h.Icon = *patch.Icon
	}
	if patch.CategoryID != nil {
		h.CategoryID = patch.CategoryID
	}
	if patch.ClearCategory {
		h.CategoryID = nil
	}
	if patch.Reminder != nil {
		h.Reminder = patch.Reminder
	}
	if patch.ClearReminder {
		h.Reminder = nil
	}
	if patch.Priority != nil {
		h.Priority = *patch.Priority
	}

	updated := slices.Clone(e.habits)
	updated[idx] = h
	if err := e.writeHabits(updated); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

// DeleteHabit removes the habit with the given id. Deleting an id that is
// not present leaves the collection unchanged and is not an error.
func (e *Engine) DeleteHabit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := slices.IndexFunc(e.habits, func(h models.Habit) bool { return h.ID == id })
	if idx < 0 {
		return nil
	}

	updated := slices.Delete(slices.Clone(e.habits), idx, idx+1)
	return e.writeHabits(updated)
}

// ToggleCompletion marks or un-marks the habit's completion for the given
// date (the current day when date is zero) and adjusts the streak by the
// yesterday-adjacency rule:
//
//   - marking: streak increments when yesterday is completed, otherwise
//     resets to 1;
//   - un-marking: streak decrements (floor 0) when yesterday remains
//     completed, otherwise stays put.
//
// The rule only ever inspects the day before the toggled date, never the
// full history, so toggling out of chronological order can leave the
// streak short of the longest run. That matches the shipped behavior and
// is deliberate.
func (e *Engine) ToggleCompletion(id string, date time.Time) (models.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if date.IsZero() {
		date = e.now()
	}
	dateStr := date.Format(constants.DateFormat)
	yesterdayStr := date.AddDate(0, 0, -1).Format(constants.DateFormat)

	idx := slices.IndexFunc(e.habits, func(h models.Habit) bool { return h.ID == id })
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	h := e.habits[idx]
	if h.CompletedOn(dateStr) {
		dates := make([]string, 0, len(h.CompletedDates)-1)
		for _, d := range h.CompletedDates {
			if d != dateStr {
				dates = append(dates, d)
			}
		}
		h.CompletedDates = dates
		if h.CompletedOn(yesterdayStr) {
			h.Streak = max(h.Streak-1, 0)
		}
	} else {
		if h.CompletedOn(yesterdayStr) {
			h.Streak++
		} else {
			h.Streak = 1
		}
		h.CompletedDates = append(slices.Clone(h.CompletedDates), dateStr)
	}

	updated := slices.Clone(e.habits)
	updated[idx] = h
	if err := e.writeHabits(updated); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}
