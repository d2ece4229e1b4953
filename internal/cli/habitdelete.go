package cli

import "fmt"

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habit, err := resolveHabit(a.Engine, c.Habit)
	if err != nil {
		return err
	}

	if err := a.Engine.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
