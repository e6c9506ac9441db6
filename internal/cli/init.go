package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/watodo/internal/storage"
	"github.com/pablasso/watodo/internal/task"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the task data directory",
	Long:  "Creates the data directory and an empty task store.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	settings, err := ResolveSettings()
	if err != nil {
		return err
	}

	if IsInitialized(settings.DataDir) {
		return fmt.Errorf("watodo is already initialized in %s", settings.DataDir)
	}

	if err := os.MkdirAll(settings.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", settings.DataDir, err)
	}

	store, err := storage.Open(settings.DataDir, settings.Backend)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save([]task.Task{}); err != nil {
		return fmt.Errorf("failed to create task store: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized watodo in %s (%s storage)\n", settings.DataDir, settings.Backend)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Run: watodo exec add Buy milk by tomorrow #errands")
	fmt.Fprintln(out, "  2. Run: watodo")
	return nil
}
