// Package cli implements the chartkit command-line interface.
//
// This package provides commands for building chart artifacts from
// definition files, serving a live browser preview, exporting images and
// managing the artifact cache. The CLI is built using cobra, reads its
// configuration through viper and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Write JSON or HTML artifacts, or trace engine calls with --dry-run
//   - serve: Live preview that updates open pages when the file changes
//   - export: Capture the chart as a PNG or JPEG through a browser
//   - themes: List the chart themes
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every engine call and page request.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one CLI step and logs its completion.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, followed
// by any extra key/value pairs.
// Example output: "Built chart took=12ms series=3"
func (p *progress) done(msg string, keyvals ...any) {
	kv := append([]any{"took", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the command logger to ctx. The root command does this
// before any subcommand runs, so goroutines started from a command can log
// without a CLI reference.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
