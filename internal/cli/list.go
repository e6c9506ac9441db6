package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pablasso/watodo/internal/command"
	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/storage"
	"github.com/pablasso/watodo/internal/task"
)

var (
	listAll    bool
	listDone   bool
	listUndone bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tasks",
	Long:  `List the stored tasks with their display index, status, timing and tags.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every task (default)")
	listCmd.Flags().BoolVar(&listDone, "done", false, "Show completed tasks only")
	listCmd.Flags().BoolVar(&listUndone, "undone", false, "Show pending tasks only")
	listCmd.MarkFlagsMutuallyExclusive("all", "done", "undone")
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := ResolveSettings()
	if err != nil {
		return err
	}
	if err := RequireInitialized(settings.DataDir); err != nil {
		return err
	}

	// Listing only reads, so it does not take the data lock.
	store, err := storage.Open(settings.DataDir, settings.Backend)
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	m, err := model.NewTaskManager(tasks)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	scope := command.ScopeAll
	switch {
	case listDone:
		scope = command.ScopeDone
	case listUndone:
		scope = command.ScopeUndone
	}
	if _, err := command.NewList(scope).Execute(m); err != nil {
		return err
	}

	return printTasks(cmd.OutOrStdout(), m.FilteredTasks(), time.Now())
}

func printTasks(out io.Writer, tasks []task.Task, now time.Time) error {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTATUS\tDESCRIPTION\tWHEN\tTAGS")

	for i, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			formatStatus(t),
			t.Description,
			formatWhen(t, now),
			formatTags(t.Tags),
		)
	}

	return w.Flush()
}

func formatStatus(t task.Task) string {
	if t.Completed {
		return "done"
	}
	return "pending"
}

// formatWhen returns the task's timing relative to now.
func formatWhen(t task.Task, now time.Time) string {
	switch t.Kind() {
	case task.KindDeadline:
		return "due " + humanize.RelTime(*t.End, now, "ago", "from now")
	case task.KindEvent:
		return "starts " + humanize.RelTime(*t.Start, now, "ago", "from now")
	default:
		return "-"
	}
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return "#" + strings.Join(tags, " #")
}
