package main

import (
	"fmt"
	"os"

	"github.com/pablasso/watodo/internal/cli"
	"github.com/pablasso/watodo/internal/tui"
	"github.com/pablasso/watodo/internal/version"
)

func main() {
	res, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case res.Subcommand:
		if err := cli.Execute(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case res.ShowHelp:
		fmt.Print(res.HelpText)
	case res.ShowVersion:
		fmt.Printf("watodo %s\n", version.Version)
	default:
		if err := tui.Run(res.Options); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
