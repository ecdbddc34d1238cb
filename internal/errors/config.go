// Package errors provides error types for faang.
// This file contains configuration-related errors.
package errors

import (
	"fmt"
	"strings"
)

// DocLink is the project documentation root.
const DocLink = "https://github.com/dbmrq/faang#configuration"

// Configuration-related error constructors.

// ConfigNotFound creates an error for a config file that was named explicitly
// but does not exist.
func ConfigNotFound(configPath string) *Error {
	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the path passed to --config, or drop the flag to use defaults.

  faang reads .faang/config.yaml from the working directory when present.
  Every setting can also be supplied through FAANG_* environment variables,
  e.g. FAANG_OUTPUT_FORMAT=json.`,
		DocLink: DocLink,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *Error {
	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Validate with: yamllint .faang/config.yaml`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *Error {
	suggestion := fmt.Sprintf("Fix the %q field in .faang/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
