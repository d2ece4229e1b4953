package cli

import (
	"fmt"

	"github.com/rdelgatto/habitkit/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Free-text description."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly)." default:"daily"`
	Time        string `short:"t" help:"Time of day (morning|afternoon|evening|anytime)."`
	Category    string `short:"c" help:"Category id or name."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Color       string `help:"Display color." default:"#6366f1"`
	Icon        string `help:"Display icon." default:"✨"`
	Reminder    bool   `help:"Store a reminder flag for this habit."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	frequency, err := parseFrequency(c.Frequency)
	if err != nil {
		return err
	}
	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}

	form := models.HabitForm{
		Name:        c.Name,
		Description: c.Description,
		Frequency:   frequency,
		Color:       c.Color,
		Icon:        c.Icon,
		Priority:    priority,
	}

	if c.Time != "" {
		tod, err := parseTimeOfDay(c.Time)
		if err != nil {
			return err
		}
		form.TimeOfDay = &tod
	}
	if c.Category != "" {
		category, err := resolveCategory(a.Engine, c.Category)
		if err != nil {
			return err
		}
		form.CategoryID = &category.ID
	}
	if c.Reminder {
		reminder := true
		form.Reminder = &reminder
	}

	habit, err := a.Engine.AddHabit(form)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}
