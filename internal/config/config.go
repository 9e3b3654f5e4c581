package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacobsee/calwidget/internal/calendar"
	"github.com/jacobsee/calwidget/internal/models"
)

// Config represents the main application configuration
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Auth      AuthConfig       `yaml:"auth"`
	Log       LogConfig        `yaml:"log"`
	Calendars []CalendarConfig `yaml:"calendars"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	Method string `yaml:"method"` // "none" or "apikey"
	APIKey string `yaml:"apiKey,omitempty"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// CalendarConfig represents a calendar widget to build
type CalendarConfig struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Scheduler   bool              `yaml:"scheduler"`
	EntryLimit  *int              `yaml:"entryLimit,omitempty"`
	InitialView string            `yaml:"initialView,omitempty"`
	Locale      string            `yaml:"locale,omitempty"`
	LicenseKey  string            `yaml:"licenseKey,omitempty"`
	Resources   []models.Resource `yaml:"resources,omitempty"`
}

// Definition converts the calendar config into a build definition
func (c CalendarConfig) Definition() *calendar.Definition {
	limit := calendar.NoEntryLimit
	if c.EntryLimit != nil {
		limit = *c.EntryLimit
	}
	return &calendar.Definition{
		Name:        c.Name,
		Description: c.Description,
		Scheduler:   c.Scheduler,
		EntryLimit:  limit,
		InitialView: c.InitialView,
		Locale:      c.Locale,
		LicenseKey:  c.LicenseKey,
		Resources:   c.Resources,
	}
}

// Definitions returns the build definitions of all configured calendars
func (c *Config) Definitions() []*calendar.Definition {
	defs := make([]*calendar.Definition, 0, len(c.Calendars))
	for _, cal := range c.Calendars {
		defs = append(defs, cal.Definition())
	}
	return defs
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a YAML configuration document and applies defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Auth.Method == "" {
		cfg.Auth.Method = "none"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks auth settings and calendar names. Entry limits are not
// checked, any value at or below zero means no limit.
func (c *Config) Validate() error {
	switch c.Auth.Method {
	case "none":
	case "apikey":
		if c.Auth.APIKey == "" {
			return fmt.Errorf("auth method apikey requires apiKey")
		}
	default:
		return fmt.Errorf("unknown auth method %q", c.Auth.Method)
	}

	seen := make(map[string]bool, len(c.Calendars))
	for i, cal := range c.Calendars {
		if cal.Name == "" {
			return fmt.Errorf("calendar %d: name is required", i)
		}
		if seen[cal.Name] {
			return fmt.Errorf("calendar %s defined more than once", cal.Name)
		}
		seen[cal.Name] = true
	}
	return nil
}

// Find returns the calendar config with the given name
func (c *Config) Find(name string) (CalendarConfig, bool) {
	for _, cal := range c.Calendars {
		if cal.Name == name {
			return cal, true
		}
	}
	return CalendarConfig{}, false
}
