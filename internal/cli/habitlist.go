package cli

import (
	"fmt"
	"time"

	"github.com/rdelgatto/habitkit/internal/constants"
	"github.com/rdelgatto/habitkit/internal/models"
)

type HabitListCmd struct {
	Frequency string `short:"f" help:"Only habits with this frequency (daily|weekly)."`
	Time      string `short:"t" help:"Only habits with this time of day."`
	Priority  string `short:"p" help:"Only habits with this priority (low|medium|high)."`
	Category  string `short:"c" help:"Only habits in this category (id or name)."`
	Done      *bool  `help:"Only habits completed (or not) today." negatable:""`
	Today     bool   `help:"Show today's completion summary."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Engine.LoadErr(); err != nil {
		fmt.Printf("⚠ Storage is degraded: %v\n\n", err)
	}

	var filter models.Filter
	if c.Frequency != "" {
		frequency, err := parseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		filter.Frequency = &frequency
	}
	if c.Time != "" {
		tod, err := parseTimeOfDay(c.Time)
		if err != nil {
			return err
		}
		filter.TimeOfDay = &tod
	}
	if c.Priority != "" {
		priority, err := parsePriority(c.Priority)
		if err != nil {
			return err
		}
		filter.Priority = &priority
	}
	if c.Category != "" {
		category, err := resolveCategory(a.Engine, c.Category)
		if err != nil {
			return err
		}
		filter.Category = &category.ID
	}
	filter.Completed = c.Done

	a.Engine.SetFilter(filter)
	habits := a.Engine.FilteredHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	fmt.Println("Habits:")
	for _, h := range habits {
		fmt.Println(formatHabitLine(a.Engine, h, today))
	}

	if c.Today {
		done := 0
		for _, h := range habits {
			if h.CompletedOn(today) {
				done++
			}
		}
		fmt.Printf("\nToday (%s): %d/%d completed\n", today, done, len(habits))
	}

	return nil
}
