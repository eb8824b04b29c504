package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see item traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("client_id", event.ClientID),
		slog.String("op", event.Op.String()),
		slog.String("key", event.Key),
	}

	if event.Op == OpGet {
		attrs = append(attrs, slog.Bool("found", event.Found))
	}
	if event.Attributes > 0 {
		attrs = append(attrs, slog.Int("attributes", event.Attributes))
	}
	if event.Elapsed > 0 {
		attrs = append(attrs, slog.Duration("elapsed", event.Elapsed))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "store op", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
