package cli

import (
	"fmt"

	"github.com/rdelgatto/habitkit/internal/app"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	store := app.NewStore(ctx.ConfigPath)
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Initialized habitkit storage at: %s\n", store.Path())
	return nil
}
