package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/watodo/internal/logic"
)

var execCmd = &cobra.Command{
	Use:   "exec <command text...>",
	Short: "Run a single task command",
	Long: `Runs one command against the stored task list and prints the result.

Examples:
  watodo exec add Pay rent by 2026-05-01 #bills
  watodo exec done 2
  watodo exec find rent

Undo only reverts commands run in the same process, so it is mostly useful
from the interactive view.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Logic.Execute(strings.Join(args, " "))
	if err != nil {
		return errors.New(logic.Message(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
