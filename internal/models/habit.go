package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeAnytime   TimeOfDay = "anytime"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeAnytime:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Habit represents a recurring practice tracked for daily completion.
// JSON tags match the persisted record layout field-for-field.
type Habit struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Frequency      Frequency  `json:"frequency"`
	TimeOfDay      *TimeOfDay `json:"timeOfDay,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedDates []string   `json:"completedDates"`
	Color          string     `json:"color"`
	Icon           string     `json:"icon"`
	CategoryID     *string    `json:"categoryId,omitempty"`
	Reminder       *bool      `json:"reminder,omitempty"`
	Priority       Priority   `json:"priority"`
	Streak         int        `json:"streak"`
}

// CompletedOn reports whether day (YYYY-MM-DD) is in the completion set.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// HabitForm is the payload for creating a habit. Generated fields
// (id, createdAt, completedDates, streak) are engine-owned.
type HabitForm struct {
	Name        string
	Description string
	Frequency   Frequency
	TimeOfDay   *TimeOfDay
	Color       string
	Icon        string
	CategoryID  *string
	Reminder    *bool
	Priority    Priority
}

// HabitPatch is a partial update. Nil pointers leave fields untouched;
// the Clear flags set the corresponding optional field to absent.
// ID and createdAt are immutable and deliberately not representable here.
type HabitPatch struct {
	Name        *string
	Description *string
	Frequency   *Frequency
	TimeOfDay   *TimeOfDay
	Color       *string
	Icon        *string
	CategoryID  *string
	Reminder    *bool
	Priority    *Priority

	ClearDescription bool
	ClearTimeOfDay   bool
	ClearCategory    bool
	ClearReminder    bool
}
