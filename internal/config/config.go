// Package config loads and persists herbwala configuration from a YAML file,
// with environment overrides and a filesystem watcher for hot reload.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all herbwala configuration.
type Config struct {
	// Storefront branding
	Shop ShopConfig `yaml:"shop"`

	// Order hand-off endpoints
	Contact ContactConfig `yaml:"contact"`

	// Promotional countdown
	Promo PromoConfig `yaml:"promo"`

	// Data directory and database
	Data DataConfig `yaml:"data"`

	// Terminal UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ShopConfig carries the storefront branding.
type ShopConfig struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Currency string `yaml:"currency"`
}

// ContactConfig carries the order hand-off endpoints.
type ContactConfig struct {
	WhatsApp   string `yaml:"whatsapp"`    // order phone, becomes the wa.me link target
	OrderEmail string `yaml:"order_email"` // mailto fallback address
}

// PromoConfig configures the home page countdown banner.
type PromoConfig struct {
	Headline string `yaml:"headline"`
	Deadline string `yaml:"deadline"` // RFC3339
}

// DataConfig configures where state lives on disk.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	DatabasePath string `yaml:"database_path"`
}

// UIConfig configures the terminal presentation.
type UIConfig struct {
	Theme         string `yaml:"theme"`          // "", "light" or "dark"; empty means autodetect
	SlideInterval string `yaml:"slide_interval"` // product image slideshow cadence
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shop: ShopConfig{
			Name:     "Herb Wala",
			Tagline:  "Pure & Natural Herbal Products",
			Currency: "Rs",
		},

		Contact: ContactConfig{
			WhatsApp:   "+92 300 1234567",
			OrderEmail: "orders@herbwala.pk",
		},

		Promo: PromoConfig{
			Headline: "Grand Sale - Up to 25% Off",
			Deadline: "2026-12-31T23:59:59+05:00",
		},

		UI: UIConfig{
			SlideInterval: "4s",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultDataDir returns the default data directory (~/.herbwala).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".herbwala"
	}
	return filepath.Join(home, ".herbwala")
}

// DefaultConfigPath returns the default path to config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults apply when the config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("HERBWALA_DB"); path != "" {
		c.Data.DatabasePath = path
	}
	if dir := os.Getenv("HERBWALA_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
	if phone := os.Getenv("HERBWALA_WHATSAPP"); phone != "" {
		c.Contact.WhatsApp = phone
	}
	if email := os.Getenv("HERBWALA_ORDER_EMAIL"); email != "" {
		c.Contact.OrderEmail = email
	}
	if theme := os.Getenv("HERBWALA_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// DataDir returns the configured data directory, falling back to the default.
func (c *Config) DataDir() string {
	if c.Data.Dir != "" {
		return c.Data.Dir
	}
	return DefaultDataDir()
}

// DatabasePath returns the SQLite database path, resolved against the data
// directory when not set explicitly.
func (c *Config) DatabasePath() string {
	if c.Data.DatabasePath != "" {
		return c.Data.DatabasePath
	}
	return filepath.Join(c.DataDir(), "herbwala.db")
}

// GetPromoDeadline returns the promo deadline. The zero time is returned when
// the deadline is unset or malformed; the countdown then shows zeros.
func (c *Config) GetPromoDeadline() time.Time {
	t, err := time.Parse(time.RFC3339, c.Promo.Deadline)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetSlideInterval returns the slideshow cadence as a duration.
func (c *Config) GetSlideInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.SlideInterval)
	if err != nil || d <= 0 {
		return 4 * time.Second
	}
	return d
}

// ValidThemes lists the supported theme overrides.
var ValidThemes = []string{"", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Contact.WhatsApp == "" && c.Contact.OrderEmail == "" {
		return fmt.Errorf("no order contact configured (set contact.whatsapp or contact.order_email)")
	}

	validTheme := false
	for _, th := range ValidThemes {
		if c.UI.Theme == th {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: light, dark or empty for autodetect)", c.UI.Theme)
	}

	return nil
}
