package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	faangerrors "github.com/dbmrq/faang/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".faang/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "FAANG"
)

// keys lists every configuration key so that FAANG_* variables are seen by
// viper even when no config file exists.
var keys = []string{
	"output.format",
	"output.color",
	"output.description_width",
	"list.free_only",
	"log.level",
	"log.dir",
	"log.json",
	"log.console",
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, merges environment
// variables, applies defaults, and validates the result.
// If path is empty, it uses DefaultConfigPath. A missing file is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	return l.decode(path)
}

// LoadOrDefault behaves like LoadConfig, except that when path is empty and
// DefaultConfigPath does not exist it returns the defaults merged with the
// environment. An explicit path must exist.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return l.LoadConfig(path)
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return l.LoadConfig(DefaultConfigPath)
	}
	return l.decode("")
}

// LoadConfigFromDir loads configuration from .faang/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

func (l *Loader) decode(path string) (*Config, error) {
	// Decode onto the defaults so keys absent from file and env keep them.
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config",
			Err:     err,
		}
	}

	applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies conventions that live outside the FAANG_ prefix.
func applyEnvOverrides(cfg *Config) {
	// https://no-color.org
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		cfg.Output.Color = false
	}
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc normalizes strings decoded into our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(OutputFormat("")):
			return OutputFormat(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "environment"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UserError converts a loading error into a faang error with a suggestion.
// Errors of other types are returned unchanged.
func UserError(err error) error {
	var le *LoadError
	if !errors.As(err, &le) {
		return err
	}

	if errors.Is(le.Err, fs.ErrNotExist) {
		return faangerrors.ConfigNotFound(le.Path)
	}

	var ve *ValidationError
	if errors.As(le.Err, &ve) {
		e := faangerrors.ConfigValidationError(ve.Field, ve.Message, ve.ValidOptions())
		var all ValidationErrors
		if errors.As(le.Err, &all) && len(all) > 1 {
			e.Cause = all
		}
		return e
	}

	return faangerrors.ConfigParseError(le.Path, le.Err)
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
