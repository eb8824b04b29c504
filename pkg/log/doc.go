// Package log provides structured operation tracing for store clients.
//
// This package defines the Logger interface and Event type for capturing
// every store operation a client performs. It is separate from operational
// logging (slog) - the trace is a complete machine-readable record of item
// traffic for debugging and analysis.
//
// # Basic Usage
//
// Clients record operations through a Logger implementation:
//
//	// For development: log to console via slog
//	mem.SetTrace(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to a binary file
//	tracer, _ := log.NewFileLogger("/var/log/lattice/client.tlog")
//	mem.SetTrace(tracer)
//
//	// Both: use MultiLogger
//	mem.SetTrace(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    tracer,
//	))
//
// # File Format
//
// Trace files use CBOR encoding with .tlog extension. Reader streams a
// file back as events, optionally filtered.
package log
