package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/watodo/internal/version"
)

var (
	dataDirFlag string
	storageFlag string
)

var rootCmd = &cobra.Command{
	Use:           "watodo",
	Short:         "A keyboard-driven task tracker",
	Long:          `Watodo keeps a list of floating tasks, deadlines and events. Run it without arguments for the interactive view.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the task data (default from config)")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "Storage backend: json|sqlite (default from config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
