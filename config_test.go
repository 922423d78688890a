// FILE: lixenwraith/colog/config_test.go
package colog

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.Name = "changed"

	if c.Name == "changed" {
		t.Fatal("mutating a clone must not affect the original")
	}
}

func TestConfigValidateRejectsBadLevel(t *testing.T) {
	c := DefaultConfig()
	c.Level = "nonsense"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestConfigValidateRejectsBadFormat(t *testing.T) {
	c := DefaultConfig()
	c.Format = "xml"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestConfigValidateRejectsEmptyFileName(t *testing.T) {
	c := DefaultConfig()
	c.EnableFile = true
	c.Name = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty name with file output enabled")
	}
}

func TestConfigValidateRejectsDottedExtension(t *testing.T) {
	c := DefaultConfig()
	c.EnableFile = true
	c.Extension = ".log"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for extension starting with a dot")
	}
}

func TestNewConfigFromFileMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewConfigFromFile("/nonexistent/path/colog.toml")
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
	if cfg.Level != defaultConfig.Level {
		t.Fatalf("Level = %q, want default %q", cfg.Level, defaultConfig.Level)
	}
}
