// FILE: lixenwraith/colog/config.go
package colog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds the settings for a synchronous Logger's formatting and
// sink selection. It mirrors the teacher's Config struct: toml-tagged
// fields, a single defaultConfig value, a Clone for safe mutation.
type Config struct {
	Level           string `toml:"level"`            // trace, debug, info, warn, error, critical, off
	Format          string `toml:"format"`           // "text" or "json"
	TimestampFormat string `toml:"timestamp_format"`

	EnableConsole bool   `toml:"enable_console"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	EnableFile bool   `toml:"enable_file"`
	Directory  string `toml:"directory"`
	Name       string `toml:"name"`
	Extension  string `toml:"extension"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

var defaultConfig = Config{
	Level:           "info",
	Format:          "text",
	TimestampFormat: time.RFC3339Nano,
	EnableConsole:   true,
	ConsoleTarget:   "stdout",
	EnableFile:      false,
	Directory:       "./logs",
	Name:            "colog",
	Extension:       "log",
	MaxSizeMB:       10,
	MaxBackups:      5,
	MaxAgeDays:      0,
	Compress:        false,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

// Clone returns a deep copy, safe to mutate independently of the receiver.
func (c *Config) Clone() *Config {
	cfg := *c
	return &cfg
}

// Validate checks field-level and cross-field invariants, matching the
// teacher's Config.validate.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Format != "text" && c.Format != "json" {
		return fmtErrorf("invalid format: %q (use text or json)", c.Format)
	}
	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}
	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: %q (use stdout or stderr)", c.ConsoleTarget)
	}
	if c.EnableFile {
		if strings.TrimSpace(c.Name) == "" {
			return fmtErrorf("name cannot be empty when file output is enabled")
		}
		if strings.HasPrefix(c.Extension, ".") {
			return fmtErrorf("extension should not start with a dot: %s", c.Extension)
		}
		if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
			return fmtErrorf("file size/retention limits cannot be negative")
		}
	}
	return nil
}

// NewConfigFromFile loads configuration from a TOML file via
// github.com/lixenwraith/config, the teacher's own loader, falling back to
// defaults for any key the file omits and for a missing file entirely.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("colog.", *cfg); err != nil {
		return nil, fmt.Errorf("colog: failed to register config struct: %w", err)
	}
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("colog: failed to load config from %s: %w", path, err)
	}
	if err := extractConfig(loader, "colog.", cfg); err != nil {
		return nil, fmt.Errorf("colog: failed to extract config values: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// extractConfig copies values the loader found back into cfg by toml tag,
// leaving untouched fields at their default. Mirrors the teacher's
// extractConfig/setFieldValue reflection walk.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}
		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}
		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(s)
	case reflect.Int, reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}
	return nil
}
