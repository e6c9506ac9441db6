package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/watodo/internal/tui"
)

type parseResult struct {
	Options     tui.Options
	Subcommand  bool
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

// parseArgs decides between the TUI and the subcommands. Any positional
// argument means a subcommand, which cobra parses on its own.
func parseArgs(args []string) (parseResult, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return parseResult{Subcommand: true}, nil
	}

	fs := flag.NewFlagSet("watodo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dataDir := fs.String("data-dir", "", "Directory holding the task data (default from config)")
	storage := fs.String("storage", "", "Storage backend: json|sqlite (default from config)")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: watodo [flags]")
		fmt.Fprintln(&b, "       watodo <command> [args]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Watodo is a keyboard-driven task tracker. Run 'watodo help' for the commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{Subcommand: true}, nil
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	return parseResult{
		Options: tui.Options{
			DataDir: *dataDir,
			Storage: *storage,
		},
	}, nil
}
