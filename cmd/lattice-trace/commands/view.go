// Package commands implements the lattice-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/lattice-store/lattice-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Op         *log.Op
	Key        string
	FailedOnly bool
}

// RunView reads the trace file and writes matching events to w in
// human-readable format.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	readFilter := log.Filter{
		Op:         filter.Op,
		Key:        filter.Key,
		FailedOnly: filter.FailedOnly,
	}
	reader, err := log.NewFilteredReader(path, readFilter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	clientID := shortenClientID(event.ClientID)

	fmt.Fprintf(w, "%s [client:%s] %-6s %s\n", ts, clientID, event.Op.String(), event.Key)

	if event.Op == log.OpGet {
		fmt.Fprintf(w, "  Found: %v\n", event.Found)
	}
	if event.Attributes > 0 {
		fmt.Fprintf(w, "  Attributes: %d\n", event.Attributes)
	}
	if event.Elapsed > 0 {
		fmt.Fprintf(w, "  Elapsed: %s\n", event.Elapsed)
	}
	if event.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}

	fmt.Fprintln(w)
}

// shortenClientID returns the first 8 characters of the client ID.
func shortenClientID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseOpFlag parses an operation name from a CLI flag.
func ParseOpFlag(s string) (log.Op, error) {
	switch strings.ToLower(s) {
	case "get":
		return log.OpGet, nil
	case "put":
		return log.OpPut, nil
	case "delete":
		return log.OpDelete, nil
	default:
		return 0, fmt.Errorf("unknown operation: %s (supported: get, put, delete)", s)
	}
}
