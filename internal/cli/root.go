package cli

import (
	"fmt"
	"strings"

	"github.com/rdelgatto/habitkit/internal/app"
	"github.com/rdelgatto/habitkit/internal/engine"
	"github.com/rdelgatto/habitkit/internal/models"
)

// Context is passed to every command by kong.
type Context struct {
	ConfigPath string
}

// openApp opens a locked session against the configured storage file.
// Callers own the returned App and must Close it.
func (ctx *Context) openApp() (*app.App, error) {
	return app.Open(ctx.ConfigPath)
}

func parseFrequency(s string) (models.Frequency, error) {
	f := models.Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid frequency %q (daily|weekly)", s)
	}
	return f, nil
}

func parseTimeOfDay(s string) (models.TimeOfDay, error) {
	t := models.TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid time of day %q (morning|afternoon|evening|anytime)", s)
	}
	return t, nil
}

func parsePriority(s string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (low|medium|high)", s)
	}
	return p, nil
}

// resolveHabit finds a habit by exact id, exact name, or unique id prefix.
func resolveHabit(e *engine.Engine, ref string) (models.Habit, error) {
	habits := e.Habits()

	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if h.Name == ref {
			return h, nil
		}
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
	default:
		return models.Habit{}, fmt.Errorf("%q is ambiguous (%d habits match)", ref, len(matches))
	}
}

// resolveCategory finds a category by exact id or exact name.
func resolveCategory(e *engine.Engine, ref string) (models.Category, error) {
	for _, c := range e.Categories() {
		if c.ID == ref || c.Name == ref {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("no category matches %q", ref)
}

func formatHabitLine(e *engine.Engine, h models.Habit, today string) string {
	check := " "
	if h.CompletedOn(today) {
		check = "✓"
	}

	line := fmt.Sprintf("  [%s] %s %s (%s, %s priority", check, h.Icon, h.Name, h.Frequency, h.Priority)
	if h.TimeOfDay != nil {
		line += ", " + string(*h.TimeOfDay)
	}
	if h.CategoryID != nil {
		if c, ok := e.Category(*h.CategoryID); ok {
			line += ", " + c.Name
		}
	}
	line += ")"
	if h.Streak > 0 {
		line += fmt.Sprintf(" 🔥%d", h.Streak)
	}
	return line
}
