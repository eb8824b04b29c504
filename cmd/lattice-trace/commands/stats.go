package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lattice-store/lattice-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents int
	EventsByOp  map[log.Op]int
	Clients     map[string]*ClientStats
	Errors      int
	Misses      int
	TimeRange   struct {
		Start time.Time
		End   time.Time
	}
}

// ClientStats holds statistics for a single client.
type ClientStats struct {
	FirstSeen    time.Time
	LastSeen     time.Time
	Events       int
	TotalElapsed time.Duration
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOp: make(map[log.Op]int),
		Clients:    make(map[string]*ClientStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOp[event.Op]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		client, ok := stats.Clients[event.ClientID]
		if !ok {
			client = &ClientStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Clients[event.ClientID] = client
		}
		client.Events++
		client.TotalElapsed += event.Elapsed
		if event.Timestamp.After(client.LastSeen) {
			client.LastSeen = event.Timestamp
		}

		if event.Op == log.OpGet && !event.Found {
			stats.Misses++
		}
		if event.Error != "" {
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Store Operation Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range []log.Op{log.OpGet, log.OpPut, log.OpDelete} {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Clients: %d\n", len(stats.Clients))
	if len(stats.Clients) > 0 {
		type clientInfo struct {
			id    string
			stats *ClientStats
		}
		clients := make([]clientInfo, 0, len(stats.Clients))
		for id, cs := range stats.Clients {
			clients = append(clients, clientInfo{id, cs})
		}
		sort.Slice(clients, func(i, j int) bool {
			return clients[i].stats.FirstSeen.Before(clients[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, c := range clients {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			shortID := c.id
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			avg := time.Duration(0)
			if c.stats.Events > 0 {
				avg = c.stats.TotalElapsed / time.Duration(c.stats.Events)
			}
			fmt.Fprintf(w, "  [%s] %d events, duration %s, avg op %s\n",
				shortID, c.stats.Events, duration, avg.Round(time.Microsecond))
		}
	}

	if stats.Misses > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Get Misses: %d\n", stats.Misses)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
