package cli

import (
	"fmt"

	"github.com/rdelgatto/habitkit/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	result := validation.New().Validate(a.Engine.Habits(), a.Engine.Categories())
	if !result.HasConflicts() {
		fmt.Println("✓ No integrity problems found")
		return nil
	}

	fmt.Printf("Found %d problem(s):\n", len(result.Conflicts))
	for _, conflict := range result.Conflicts {
		fmt.Printf("  [%s] %s\n", conflict.Type, conflict.Message)
	}
	return fmt.Errorf("validation failed")
}
