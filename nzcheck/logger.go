package nzcheck

import (
	"go/token"
	"io"
	"log/slog"
	"os"
)

// logOutput receives the analyzer's log records.
var logOutput io.Writer = os.Stderr

// logger wraps slog.Logger with nzcheck-specific context.
// This provides structured logging with consistent field names.
type logger struct {
	*slog.Logger
}

// newLogger creates a text logger writing to w. Debug records are only
// emitted when debug is set.
func newLogger(w io.Writer, debug bool) *logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &logger{
		Logger: slog.New(handler),
	}
}

// withPackage adds the analyzed package path.
func (l *logger) withPackage(path string) *logger {
	return &logger{
		Logger: l.Logger.With("package", path),
	}
}

// call logs one inspected constructor call.
func (l *logger) call(fset *token.FileSet, pos token.Pos, callee string, zero bool) {
	l.Debug("constructor call",
		"callee", callee,
		"pos", fset.Position(pos).String(),
		"zero", zero,
	)
}
