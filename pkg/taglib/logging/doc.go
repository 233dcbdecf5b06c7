// Package logging provides a minimal logging facade for the taglib wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Text records on stderr at debug level
//	logger = logging.NewText(os.Stderr, slog.LevelDebug)
//
// The taglib package logs native failures (open, save) at debug level with
// a "path" attribute built by Path. Pass logging.Discard() through
// taglib.WithLogger to silence it entirely.
package logging
