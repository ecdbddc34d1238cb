package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrNotFound, "resource not found"),
			expected: "resource not found",
		},
		{
			name: "with cause",
			err: &Error{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrConfig, "wrapped error")
	assert.Same(t, cause, errors.Unwrap(err))

	// Without cause, unwrap yields the kind.
	noCause := New(ErrUsage, "no cause")
	assert.ErrorIs(t, errors.Unwrap(noCause), ErrUsage)
}

func TestError_Is(t *testing.T) {
	err := New(ErrValidation, "bad input")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrConfig)

	wrapped := Wrap(err, ErrUsage, "wrapped")
	assert.ErrorIs(t, wrapped, ErrUsage)
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestError_Format(t *testing.T) {
	err := &Error{
		Kind:       ErrConfig,
		Message:    "bad config",
		Suggestion: "Fix the file",
		DocLink:    "https://example.com/docs",
		Details: map[string]string{
			"path":  ".faang/config.yaml",
			"field": "output.format",
		},
	}

	formatted := err.Format()

	assert.Contains(t, formatted, "Error: bad config")
	assert.Contains(t, formatted, "💡 Suggestion: Fix the file")
	assert.Contains(t, formatted, "📚 Documentation: https://example.com/docs")
	assert.Contains(t, formatted, "  field: output.format\n  path: .faang/config.yaml\n")
}

func TestError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	assert.Equal(t, "config.yaml", err.Details["file"])
	assert.Equal(t, "42", err.Details["line"])
}

func TestError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrConfig, "config error").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrUsage, "bad flag", "Run faang --help")

	assert.Equal(t, "Run faang --help", err.Suggestion)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestAs(t *testing.T) {
	inner := New(ErrNotFound, "missing")
	wrapped := errors.Join(errors.New("context"), inner)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
