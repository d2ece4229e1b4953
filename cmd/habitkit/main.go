package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rdelgatto/habitkit/internal/cli"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json for the JSON backend)." type:"path" default:"~/.config/habitkit/habitkit.db"`

	Init     cli.InitCmd        `cmd:"" help:"Initialize habitkit storage."`
	Tui      cli.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List     cli.HabitListCmd   `cmd:"" help:"List habits, optionally filtered."`
	Edit     cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete   cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Done     cli.DoneCmd        `cmd:"" help:"Toggle a habit's completion for a day."`
	Doctor   cli.DoctorCmd      `cmd:"" help:"Run storage and data diagnostics."`
	Validate cli.ValidateCmd    `cmd:"" help:"Check collections for integrity problems."`
	Category struct {
		Add    cli.CategoryAddCmd    `cmd:"" help:"Add a new category."`
		List   cli.CategoryListCmd   `cmd:"" help:"List all categories."`
		Edit   cli.CategoryEditCmd   `cmd:"" help:"Edit an existing category."`
		Delete cli.CategoryDeleteCmd `cmd:"" help:"Delete a category (habits keep living)."`
	} `cmd:"" help:"Manage categories."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitkit"),
		kong.Description("Local-first habit tracker with streaks and categories"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		ConfigPath: CLI.Config,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
