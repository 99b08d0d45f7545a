// Package log provides structured protocol logging for the remote client.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events at multiple layers (transport, wire, session).
// It is separate from operational logging (slog): protocol capture provides
// a complete machine-readable trace of a pairing or remote session.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For bug reports: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/tmp/atvremote.alog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at multiple layers:
//   - Transport: raw frame bytes (FrameEvent)
//   - Wire: decoded messages (MessageEvent)
//   - Session: pairing and remote state changes (StateChangeEvent)
//
// Ping traffic and errors have dedicated event types.
//
// # File Format
//
// Log files are a stream of CBOR records with integer keys. The
// atvremote-log command views and filters them.
package log
