package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/1broseidon/stagehand/internal/ipc"
)

func printPanelUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stagehand panel list [--json]")
	fmt.Fprintln(w, "  stagehand panel toggle <kind>")
	fmt.Fprintln(w, "  stagehand panel focus <kind>")
	fmt.Fprintln(w, "  stagehand panel move <kind> <x> <y>")
	fmt.Fprintln(w, "  stagehand panel resize <kind> <width> <height>")
	fmt.Fprintln(w, "  stagehand panel maximize <kind>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Kinds: chat, jobs, agentconfig")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'stagehand panel <command> --help' for command-specific options.")
}

func runPanel(args []string) int {
	if len(args) == 0 {
		printPanelUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printPanelUsage(os.Stdout)
		return 0
	}

	client := ipc.NewClient()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: stagehand panel list [--json]")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "List panels bottom to top with geometry and state.")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Flags:")
			fs.PrintDefaults()
		}
		jsonOut := fs.Bool("json", false, "Output panel details as JSON")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "panel list takes no arguments")
			fs.Usage()
			return 2
		}

		data, err := client.ListPanels()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if *jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(data); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		}

		for _, p := range data.Panels {
			state := "closed"
			if p.Open {
				state = "open"
			}
			if p.Maximized {
				state += ", maximized"
			}
			fmt.Printf("z=%d %-12s %4dx%-4d at (%d,%d) [%s]\n",
				p.Z, p.Kind, p.Width, p.Height, p.X, p.Y, state)
		}
		return 0

	case "toggle":
		return panelKindCommand(args[1:], "toggle", "Open a closed panel or close an open one.", client.TogglePanel)

	case "focus":
		return panelKindCommand(args[1:], "focus", "Raise an open panel to the top of the stack.", client.FocusPanel)

	case "maximize":
		return panelKindCommand(args[1:], "maximize", "Toggle a panel between maximized and restored.", client.MaximizePanel)

	case "move":
		fs := flag.NewFlagSet("move", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: stagehand panel move <kind> <x> <y>")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Move a panel. The position is clamped to keep the panel inside the stage.")
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 3 {
			fmt.Fprintln(os.Stderr, "panel move requires <kind> <x> <y>")
			fs.Usage()
			return 2
		}
		x, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid x: %s\n", fs.Arg(1))
			return 2
		}
		y, err := strconv.Atoi(fs.Arg(2))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid y: %s\n", fs.Arg(2))
			return 2
		}

		info, err := client.MovePanel(fs.Arg(0), x, y)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		printPanelInfo(info)
		return 0

	case "resize":
		fs := flag.NewFlagSet("resize", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: stagehand panel resize <kind> <width> <height>")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Resize a panel. The size is clamped to the minimum panel size and the stage.")
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 3 {
			fmt.Fprintln(os.Stderr, "panel resize requires <kind> <width> <height>")
			fs.Usage()
			return 2
		}
		w, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid width: %s\n", fs.Arg(1))
			return 2
		}
		h, err := strconv.Atoi(fs.Arg(2))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid height: %s\n", fs.Arg(2))
			return 2
		}

		info, err := client.ResizePanel(fs.Arg(0), w, h)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		printPanelInfo(info)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown panel command: %s\n\n", args[0])
		printPanelUsage(os.Stderr)
		return 2
	}
}

// panelKindCommand handles the single-argument panel subcommands.
func panelKindCommand(args []string, name, description string, fn func(string) (*ipc.PanelInfo, error)) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stagehand panel %s <kind>\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, description)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "panel %s requires <kind>\n", name)
		fs.Usage()
		return 2
	}

	info, err := fn(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printPanelInfo(info)
	return 0
}

func printPanelInfo(p *ipc.PanelInfo) {
	fmt.Printf("kind:      %s\n", p.Kind)
	fmt.Printf("open:      %v\n", p.Open)
	fmt.Printf("rect:      %dx%d at (%d,%d)\n", p.Width, p.Height, p.X, p.Y)
	fmt.Printf("z:         %d\n", p.Z)
	fmt.Printf("maximized: %v\n", p.Maximized)
}
