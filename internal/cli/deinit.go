package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pablasso/watodo/internal/storage"
)

var (
	deinitForce bool
)

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove the task data directory",
	Long:  "Removes the data directory with every task and the journal. This action cannot be undone.",
	RunE:  runDeinit,
}

func init() {
	deinitCmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	settings, err := ResolveSettings()
	if err != nil {
		return err
	}
	dataDir := settings.DataDir

	info, err := os.Stat(dataDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("watodo is not initialized in %s", dataDir)
	}
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", dataDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dataDir)
	}

	held, err := storage.NewDataLock(dataDir).IsLocked()
	if err != nil {
		return err
	}
	if held {
		return storage.ErrLocked
	}

	taskCount, totalSize, err := calculateDirStats(settings.DataDir, settings.Backend)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", dataDir, err)
	}

	if !deinitForce {
		fmt.Fprintf(cmd.OutOrStdout(), "This will delete %s (%d tasks, %s). Continue? [y/N] ",
			dataDir, taskCount, humanize.Bytes(uint64(totalSize)))

		reader := bufio.NewReader(cmd.InOrStdin())
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dataDir, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Task data has been removed.")
	return nil
}

func calculateDirStats(dir string, backend storage.Backend) (taskCount int, totalSize int64, err error) {
	store, err := storage.Open(dir, backend)
	if err != nil {
		return 0, 0, err
	}
	tasks, loadErr := store.Load()
	store.Close()
	if loadErr == nil {
		taskCount = len(tasks)
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	return
}
