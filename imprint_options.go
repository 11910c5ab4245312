package imprint

import (
	"log/slog"
	"os"

	phuslog "github.com/phuslu/log"

	"github.com/caasmo/imprint/core"
)

// DefaultLoggerOptions provides default settings for slog handlers.
var DefaultLoggerOptions = &slog.HandlerOptions{
	Level: slog.LevelInfo,
}

// WithPhusLogger configures slog with phuslu/log's JSON handler.
// Uses DefaultLoggerOptions if opts is nil.
func WithPhusLogger(opts *slog.HandlerOptions) core.Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	logger := slog.New(phuslog.SlogNewJSONHandler(os.Stderr, opts))
	return core.WithLogger(logger)
}

// WithTextLogger configures slog with the standard library's text handler.
func WithTextLogger(opts *slog.HandlerOptions) core.Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	return core.WithLogger(logger)
}
