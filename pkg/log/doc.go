// Package log provides the structured logging facade used by the snowid CLI.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. It is backed by Go's standard library
// slog handlers, so output format (text or JSON) and destination are chosen
// at construction and the rest of the codebase stays against this facade.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormat(log.FormatText),
//	)
//	l = l.With(log.Component("cli"))
//	l.Info("generator ready", log.Int64("machine_id", 42))
package log
