// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the small surface the commands need.
type Logger struct {
	logger zerolog.Logger
}

// New creates a console logger writing to stderr. Progress output goes to
// stderr so json/yaml results on stdout stay machine-readable.
func New(level string, quiet bool) *Logger {
	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	if quiet {
		logLevel = zerolog.ErrorLevel
	}

	logger := zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
	return &Logger{logger: logger}
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

// Error logs an error with its cause.
func (l *Logger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}
