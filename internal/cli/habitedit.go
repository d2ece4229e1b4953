package cli

import (
	"fmt"

	"github.com/rdelgatto/habitkit/internal/models"
)

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit id or name."`
	Name        *string `help:"New name."`
	Description *string `short:"d" help:"New description."`
	Frequency   *string `short:"f" help:"New frequency (daily|weekly)."`
	Time        *string `short:"t" help:"New time of day."`
	Category    *string `short:"c" help:"New category (id or name)."`
	Priority    *string `short:"p" help:"New priority (low|medium|high)."`
	Color       *string `help:"New display color."`
	Icon        *string `help:"New display icon."`
	Reminder    *bool   `help:"Set or unset the reminder flag." negatable:""`

	ClearDescription bool `help:"Remove the description."`
	ClearTime        bool `help:"Remove the time of day."`
	ClearCategory    bool `help:"Remove the category."`
	ClearReminder    bool `help:"Remove the reminder flag."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habit, err := resolveHabit(a.Engine, c.Habit)
	if err != nil {
		return err
	}

	patch := models.HabitPatch{
		Name:             c.Name,
		Description:      c.Description,
		Color:            c.Color,
		Icon:             c.Icon,
		Reminder:         c.Reminder,
		ClearDescription: c.ClearDescription,
		ClearTimeOfDay:   c.ClearTime,
		ClearCategory:    c.ClearCategory,
		ClearReminder:    c.ClearReminder,
	}

	if c.Frequency != nil {
		frequency, err := parseFrequency(*c.Frequency)
		if err != nil {
			return err
		}
		patch.Frequency = &frequency
	}
	if c.Time != nil {
		tod, err := parseTimeOfDay(*c.Time)
		if err != nil {
			return err
		}
		patch.TimeOfDay = &tod
	}
	if c.Priority != nil {
		priority, err := parsePriority(*c.Priority)
		if err != nil {
			return err
		}
		patch.Priority = &priority
	}
	if c.Category != nil {
		category, err := resolveCategory(a.Engine, *c.Category)
		if err != nil {
			return err
		}
		patch.CategoryID = &category.ID
	}

	updated, err := a.Engine.UpdateHabit(habit.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Name)
	return nil
}
