package models

// Filter narrows the visible habit set. Nil fields impose no constraint;
// set fields compose with logical AND.
type Filter struct {
	Category  *string
	TimeOfDay *TimeOfDay
	Frequency *Frequency
	Priority  *Priority
	Completed *bool
}

// IsZero reports whether the filter imposes no constraints.
func (f Filter) IsZero() bool {
	return f.Category == nil && f.TimeOfDay == nil && f.Frequency == nil &&
		f.Priority == nil && f.Completed == nil
}

// Matches reports whether h satisfies every set dimension of the filter.
// today is the current calendar date (YYYY-MM-DD) used for the completed
// dimension.
func (f Filter) Matches(h Habit, today string) bool {
	if f.Category != nil {
		if h.CategoryID == nil || *h.CategoryID != *f.Category {
			return false
		}
	}
	if f.TimeOfDay != nil {
		if h.TimeOfDay == nil || *h.TimeOfDay != *f.TimeOfDay {
			return false
		}
	}
	if f.Frequency != nil && h.Frequency != *f.Frequency {
		return false
	}
	if f.Priority != nil && h.Priority != *f.Priority {
		return false
	}
	if f.Completed != nil && h.CompletedOn(today) != *f.Completed {
		return false
	}
	return true
}
