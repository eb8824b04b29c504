// Command lattice-trace is a tool for viewing and analyzing store
// operation trace files.
//
// Trace files are created by attaching a file logger to a store client:
//
//	tracer, _ := log.NewFileLogger("client.tlog")
//	mem.SetTrace(tracer)
//
// Usage:
//
//	lattice-trace <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	lattice-trace view client.tlog
//
//	# View only failed gets
//	lattice-trace view --op get --failed client.tlog
//
//	# Export to JSONL
//	lattice-trace export --format jsonl client.tlog
//
//	# Filter by key and save to new file
//	lattice-trace filter --key acct-1 -o filtered.tlog client.tlog
//
//	# Show statistics
//	lattice-trace stats client.tlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lattice-store/lattice-go/cmd/lattice-trace/commands"
)

const usage = `lattice-trace - Store Operation Trace Analyzer

Usage:
  lattice-trace <command> [flags] <file.tlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "lattice-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `lattice-trace view - View trace file in human-readable format

Usage:
  lattice-trace view [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	op := fs.String("op", "", "Filter by operation (get, put, delete)")
	key := fs.String("key", "", "Filter by item key")
	failed := fs.Bool("failed", false, "Show only failed operations")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	var filter commands.ViewFilter
	filter.Key = *key
	filter.FailedOnly = *failed
	if *op != "" {
		o, err := commands.ParseOpFlag(*op)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Op = &o
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `lattice-trace export - Export trace file to JSON or CSV format

Usage:
  lattice-trace export [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `lattice-trace filter - Filter trace file and write to new file

Usage:
  lattice-trace filter [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "filtered.tlog", "Output file")
	clientID := fs.String("client-id", "", "Filter by client ID")
	key := fs.String("key", "", "Filter by item key")
	op := fs.String("op", "", "Filter by operation (get, put, delete)")
	timeStart := fs.String("time-start", "", "Keep events at or after this RFC3339 time")
	timeEnd := fs.String("time-end", "", "Keep events before this RFC3339 time")
	failed := fs.Bool("failed", false, "Keep only failed operations")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		ClientID:   *clientID,
		Key:        *key,
		Op:         *op,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
		FailedOnly: *failed,
	}

	if err := commands.RunFilter(fs.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `lattice-trace stats - Show statistics about the trace file

Usage:
  lattice-trace stats <file.tlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
