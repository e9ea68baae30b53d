// Package logging attaches a zerolog logger to the context. Production
// runs log to a rotated file under the XDG data dir; the terminal stays
// reserved for the report.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/turnstile/internal/config"
	"github.com/wizzomafizzo/turnstile/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines the configuration for logger creation.
type Config struct {
	// Writer overrides file logging; tests pass an in-memory writer.
	Writer   io.Writer
	Level    zerolog.Level
	Rotation config.LoggingConfig
}

// New creates a new context with a logger attached.
// For production: provide fs and leave Writer nil for file logging.
// For tests: provide a custom Writer for in-memory logging.
func New(ctx context.Context, fs afero.Fs, cfg Config) (context.Context, error) {
	var writer io.Writer

	if cfg.Writer != nil {
		writer = cfg.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).LogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    cfg.Rotation.MaxSize,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAge,
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Logger().
		Level(cfg.Level)

	return logger.WithContext(ctx), nil
}

// ParseLevel maps a config level string to a zerolog level, defaulting to
// info on anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Get retrieves the logger from the provided context, or a disabled
// logger if none exists.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
