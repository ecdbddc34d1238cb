package logging

import (
	"context"
	"sync/atomic"
)

var (
	global atomic.Pointer[Logger]
	noop   = NewNoop()
)

// Global returns the process logger, or a no-op logger before InitGlobal.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noop
}

// FromContext returns the process logger tagged with the run ID and command
// stored in ctx.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Global()
	}
	return Global().WithContext(ctx)
}

// SetGlobal replaces the process logger without closing the previous one.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) { Global().Debug(msg, args...) }

// Info logs an info message using the global logger.
func Info(msg string, args ...any) { Global().Info(msg, args...) }

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) { Global().Warn(msg, args...) }

// Error logs an error message using the global logger.
func Error(msg string, args ...any) { Global().Error(msg, args...) }

// With returns the global logger with the given attributes added.
func With(args ...any) *Logger { return Global().With(args...) }

// InitGlobal builds a logger from config and installs it, closing the one
// it replaces.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	if prev := global.Swap(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// CloseGlobal closes and uninstalls the global logger.
func CloseGlobal() error {
	if l := global.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}
