package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/1broseidon/stagehand/internal/ipc"
)

func printStageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stagehand stage show")
	fmt.Fprintln(w, "  stagehand stage set <width> <height>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'stagehand stage <command> --help' for command-specific options.")
}

func runStage(args []string) int {
	if len(args) == 0 {
		printStageUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printStageUsage(os.Stdout)
		return 0
	}

	client := ipc.NewClient()

	switch args[0] {
	case "show":
		fs := flag.NewFlagSet("show", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: stagehand stage show")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Show the stage size panels are laid out in.")
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "stage show takes no arguments")
			fs.Usage()
			return 2
		}

		stage, err := client.GetStage()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("%dx%d\n", stage.Width, stage.Height)
		return 0

	case "set":
		fs := flag.NewFlagSet("set", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: stagehand stage set <width> <height>")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Pin the stage to a new size. Only supported when the daemon runs")
			fmt.Fprintln(os.Stderr, "with a fixed stage; display-tracked stages reject this.")
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 2 {
			fmt.Fprintln(os.Stderr, "stage set requires <width> <height>")
			fs.Usage()
			return 2
		}
		w, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid width: %s\n", fs.Arg(0))
			return 2
		}
		h, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid height: %s\n", fs.Arg(1))
			return 2
		}

		if err := client.SetStage(w, h); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown stage command: %s\n\n", args[0])
		printStageUsage(os.Stderr)
		return 2
	}
}
