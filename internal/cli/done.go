package cli

import (
	"fmt"
	"time"

	"github.com/rdelgatto/habitkit/internal/constants"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `short:"D" help:"Date to toggle (YYYY-MM-DD, default today)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habit, err := resolveHabit(a.Engine, c.Habit)
	if err != nil {
		return err
	}

	var date time.Time
	if c.Date != "" {
		date, err = time.Parse(constants.DateFormat, c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", c.Date, err)
		}
	}

	updated, err := a.Engine.ToggleCompletion(habit.ID, date)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	}

	if updated.CompletedOn(day) {
		fmt.Printf("✓ %s completed on %s (streak: %d)\n", updated.Name, day, updated.Streak)
	} else {
		fmt.Printf("Un-marked %s for %s (streak: %d)\n", updated.Name, day, updated.Streak)
	}
	return nil
}
