package cli

import (
	"fmt"

	"github.com/rdelgatto/habitkit/internal/models"
)

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Display color." default:"#6366f1"`
	Icon  string `help:"Display icon (defaults to a generic symbol)."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	category, err := a.Engine.AddCategory(models.CategoryForm{
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added category: %s (ID: %s)\n", category.Name, category.ID)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	categories := a.Engine.Categories()
	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	// Count habits per category for context
	counts := make(map[string]int)
	for _, h := range a.Engine.Habits() {
		if h.CategoryID != nil {
			counts[*h.CategoryID]++
		}
	}

	fmt.Println("Categories:")
	for _, category := range categories {
		fmt.Printf("  %s %s (ID: %s, %d habits)\n", category.Icon, category.Name, category.ID, counts[category.ID])
	}
	return nil
}

type CategoryEditCmd struct {
	Category string  `arg:"" help:"Category id or name."`
	Name     *string `help:"New name."`
	Color    *string `help:"New display color."`
	Icon     *string `help:"New display icon."`
}

func (c *CategoryEditCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	category, err := resolveCategory(a.Engine, c.Category)
	if err != nil {
		return err
	}

	updated, err := a.Engine.UpdateCategory(category.ID, models.CategoryPatch{
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated category: %s\n", updated.Name)
	return nil
}

type CategoryDeleteCmd struct {
	Category string `arg:"" help:"Category id or name."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	a, err := ctx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	category, err := resolveCategory(a.Engine, c.Category)
	if err != nil {
		return err
	}

	// The engine clears the categoryId on referencing habits; the habits
	// themselves survive.
	if err := a.Engine.DeleteCategory(category.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted category: %s\n", category.Name)
	return nil
}
