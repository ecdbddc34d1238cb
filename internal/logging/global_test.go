package logging

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	global.Store(nil)
	t.Cleanup(func() { _ = CloseGlobal() })
}

func TestGlobal_DefaultsToNoop(t *testing.T) {
	resetGlobal(t)

	logger := Global()
	require.NotNil(t, logger)
	assert.Same(t, noop, logger)
	assert.NotPanics(t, func() { logger.Info("test message") })
}

func TestSetGlobal(t *testing.T) {
	resetGlobal(t)

	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })

	SetGlobal(logger)
	assert.Same(t, logger, Global())
}

func TestInitGlobal(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}))

	logger := Global()
	logger.Info("test message")
	assert.FileExists(t, logger.LogPath())
}

func TestInitGlobal_ReplacesPrevious(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}))
	first := Global()

	require.NoError(t, InitGlobal(&Config{Level: LevelInfo}))
	assert.NotSame(t, first, Global())
	assert.Empty(t, Global().LogPath())
	assert.NotEmpty(t, first.LogPath(), "previous logger keeps its path")
}

func TestCloseGlobal(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}))
	require.NoError(t, CloseGlobal())

	assert.Nil(t, global.Load())
	assert.Same(t, noop, Global(), "falls back to the no-op logger")
	assert.NoError(t, CloseGlobal(), "closing twice is harmless")
}

func TestFromContext(t *testing.T) {
	resetGlobal(t)

	var buf bytes.Buffer
	require.NoError(t, InitGlobal(&Config{Level: LevelInfo, Console: true, ConsoleWriter: &buf}))

	ctx := WithCommand(WithRunID(context.Background(), "run-1"), "faang list")
	FromContext(ctx).Info("listed")
	var none context.Context
	FromContext(none).Info("no context")

	out := buf.String()
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, `command="faang list"`)
	assert.Contains(t, out, "no context")
}

func TestGlobalConvenienceFunctions(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, InitGlobal(&Config{Level: LevelDebug, LogDir: t.TempDir()}))

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	With("component", "test").Info("with test")

	content, err := os.ReadFile(Global().LogPath())
	require.NoError(t, err)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message", "component=test"} {
		assert.Contains(t, string(content), msg)
	}
}
