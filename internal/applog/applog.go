// Package applog adapts the CLI's diagnostic logging to a rotating file
// via slog and lumberjack, grounded on the vice example's pkg/log
// wrapper. The solver core never logs — only cmd/sketchsolve does.
package applog

import (
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps *slog.Logger with the path of the file it is writing to.
type Logger struct {
	*slog.Logger
	LogFile string
}

// New returns a Logger writing JSON-formatted records to dir at the
// given level ("debug", "info", "warn", or "error"; unrecognized values
// fall back to "info"). dir is created by lumberjack on first write if
// it does not already exist.
func New(level string, dir string) *Logger {
	if dir == "" {
		dir = "."
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "sketchsolve.log"),
		MaxSize:    16, // MB
		MaxBackups: 3,
		MaxAge:     14,
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{Logger: slog.New(h), LogFile: w.Filename}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Step logs one propagation decision at debug level: the variable, its
// freedom, the intersected locus and the chosen position. The initial
// position and per-constraint loci of a solve.Step are not logged.
func (l *Logger) Step(variable string, freedom int64, intersected, chosen string) {
	if l == nil {
		return
	}
	l.Debug("propagation step",
		slog.String("variable", variable),
		slog.Int64("freedom", freedom),
		slog.String("intersected", intersected),
		slog.String("chosen", chosen))
}

// ArbitraryFallback logs the ids committed via the void-fallback branch.
func (l *Logger) ArbitraryFallback(ids []string) {
	if l == nil || len(ids) == 0 {
		return
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	l.Debug("arbitrary fallback", slog.Any("ids", args))
}
