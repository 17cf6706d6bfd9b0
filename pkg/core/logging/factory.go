// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/sro/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service or component name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to JSON.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, _ := mdwlog.ParseLevel(cfg.Level)

	format := mdwlog.FormatJSON
	if cfg.Format == "text" {
		format = mdwlog.FormatText
	}

	// stdout is reserved for command output
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// Logger wraps the foundation logger with key-value style methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// FromConfig creates a key-value logger from cfg
func FromConfig(cfg LoggerConfig) *Logger {
	return Wrap(NewLogger(cfg), cfg.ServiceName)
}

// Wrap adapts an existing foundation logger
func Wrap(logger *mdwlog.Logger, name string) *Logger {
	return &Logger{Logger: logger, name: name}
}

// Nop returns a logger that writes nothing
func Nop() *Logger {
	return Wrap(mdwlog.Discard(), "nop")
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	mdwLevel := mdwlog.LevelInfo
	switch level {
	case LevelDebug:
		mdwLevel = mdwlog.LevelDebug
	case LevelWarn:
		mdwLevel = mdwlog.LevelWarn
	case LevelError:
		mdwLevel = mdwlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(mdwLevel),
		name:   l.name,
	}
}

// With returns a logger that adds the key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// WithRequestID returns a logger bound to a request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.WithRequestID(requestID),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields. A trailing key without
// value and non-string keys are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
