package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/rdelgatto/habitkit/internal/app"
	"github.com/rdelgatto/habitkit/internal/backup"
	"github.com/rdelgatto/habitkit/internal/engine"
	"github.com/rdelgatto/habitkit/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	store := app.NewStore(ctx.ConfigPath)
	if err := store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
		defer store.Close()
	}

	// Check 2: collections load cleanly
	var eng *engine.Engine
	if storeReachable {
		eng = engine.New(store)
		if err := eng.Load(); err != nil {
			fmt.Printf("❌ Collections load: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			eng = nil
		} else {
			fmt.Printf("✓ Collections load: OK (%d habits, %d categories)\n",
				len(eng.Habits()), len(eng.Categories()))
			if len(eng.Categories()) == 0 {
				fmt.Printf("⚠ Category seed: WARNING\n")
				fmt.Printf("   no categories present; the default set should exist\n")
			}
		}
	} else {
		fmt.Printf("⊘ Collections load: SKIPPED (storage not reachable)\n")
	}

	// Check 3: data integrity
	if eng != nil {
		result := validation.New().Validate(eng.Habits(), eng.Categories())
		if result.HasConflicts() {
			fmt.Printf("❌ Data integrity: FAIL (%d conflicts)\n", len(result.Conflicts))
			for _, conflict := range result.Conflicts {
				fmt.Printf("   - %s\n", conflict.Message)
			}
			hasError = true
		} else {
			fmt.Printf("✓ Data integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data integrity: SKIPPED\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx.ConfigPath); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: no other habitkit process (warning only)
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkBackupsPresent(configPath string) error {
	backups, err := backup.NewManager(configPath).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'habitkit backup create'")
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

// checkDuplicateProcess warns when another habitkit process is running;
// the file lock will refuse it a session, but the user should know why.
func checkDuplicateProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	binary := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == binary {
			return fmt.Errorf("another %s process is running (pid %d)", binary, p.Pid())
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range: %d seconds", offset)
	}
	return nil
}
