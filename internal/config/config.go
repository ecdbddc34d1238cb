// Package config provides configuration data structures for faang.
package config

import (
	"fmt"
	"strings"
)

// Config represents the complete faang configuration loaded from
// .faang/config.yaml and FAANG_* environment variables.
type Config struct {
	Output OutputConfig `yaml:"output" json:"output" mapstructure:"output"`
	List   ListConfig   `yaml:"list"   json:"list"   mapstructure:"list"`
	Log    LogConfig    `yaml:"log"    json:"log"    mapstructure:"log"`
}

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	// OutputTable renders styled terminal tables and panels.
	OutputTable OutputFormat = "table"
	// OutputJSON prints indented JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML prints YAML.
	OutputYAML OutputFormat = "yaml"
)

// OutputFormats returns every supported output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputTable, OutputJSON, OutputYAML}
}

// IsValid reports whether f is a supported output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	}
	return false
}

func (f OutputFormat) String() string { return string(f) }

// ParseOutputFormat parses s case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", &ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(formatNames(), ", "), s),
		}
	}
	return f, nil
}

func formatNames() []string {
	names := make([]string, 0, 3)
	for _, f := range OutputFormats() {
		names = append(names, string(f))
	}
	return names
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	// Format is the default output format (default: table).
	Format OutputFormat `yaml:"format" json:"format" mapstructure:"format"`
	// Color enables ANSI styling in table output (default: true).
	Color bool `yaml:"color" json:"color" mapstructure:"color"`
	// DescriptionWidth is where search results cut descriptions (default: 50).
	DescriptionWidth int `yaml:"description_width" json:"description_width" mapstructure:"description_width"`
}

// ListConfig configures the list command.
type ListConfig struct {
	// FreeOnly makes list show only free resources unless overridden by flag.
	FreeOnly bool `yaml:"free_only" json:"free_only" mapstructure:"free_only"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir enables file logging when set.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON writes log files as JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
	// Console mirrors log records to stderr.
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
}

// Default values.
const (
	DefaultDescriptionWidth = 50
	DefaultLogLevel         = "info"

	MinDescriptionWidth = 10
	MaxDescriptionWidth = 500
)

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:           OutputTable,
			Color:            true,
			DescriptionWidth: DefaultDescriptionWidth,
		},
		List: ListConfig{
			FreeOnly: false,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// Booleans are not touched; the loader decodes onto NewConfig so an
// explicit false survives.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.DescriptionWidth == 0 {
		c.Output.DescriptionWidth = defaults.Output.DescriptionWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidOptions returns the accepted values for the field, if it is an enum.
func (e *ValidationError) ValidOptions() []string {
	switch e.Field {
	case "output.format":
		return formatNames()
	case "log.level":
		return append([]string(nil), LogLevels...)
	}
	return nil
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Unwrap exposes each error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.Output.Format.IsValid() {
		errs = append(errs, &ValidationError{
			Field:   "output.format",
			Message: "must be 'table', 'json', or 'yaml'",
		})
	}

	if w := c.Output.DescriptionWidth; w < MinDescriptionWidth || w > MaxDescriptionWidth {
		errs = append(errs, &ValidationError{
			Field:   "output.description_width",
			Message: fmt.Sprintf("must be between %d and %d", MinDescriptionWidth, MaxDescriptionWidth),
		})
	}

	if !validLogLevel(c.Log.Level) {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range LogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
