// Package logging builds the logr.Logger used across the module, backed by
// zap through zapr.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr's V().
const (
	DEBUG = 1
	TRACE = 2
)

// ErrUnknownLevel indicates a level name New does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel maps error, info, debug and trace onto zap levels. zapr emits
// V(n) records when the zap level is at most -n.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return zapcore.ErrorLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// New returns a logger at the given level. Development mode writes
// human-readable console output; otherwise JSON.
func New(level string, development bool) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// NewWithCore wraps an existing zap core; tests use it with an observer.
func NewWithCore(core zapcore.Core) logr.Logger {
	return zapr.NewLogger(zap.New(core))
}
