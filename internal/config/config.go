package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir is the shared directory holding the JSON documents. Both
	// the member-facing and staff-facing processes must point at the
	// same directory.
	DataDir string `yaml:"dataDir" validate:"required"`

	// DatabaseURL, when set, selects the PostgreSQL document store
	// instead of the file store.
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// ServiceDays is an RRULE describing the days the branch accepts
	// online reservations. Empty means every day.
	ServiceDays string `yaml:"serviceDays,omitempty"`

	// ReportRecipient receives the emailed daily CSV report.
	ReportRecipient string `yaml:"reportRecipient,omitempty" validate:"omitempty,email"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from mabilisss_config.yaml.
// It looks for the config file in the current directory first, then in
// the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.ServiceDays != "" {
		if _, err := rrule.StrToRRule(cfg.ServiceDays); err != nil {
			return fmt.Errorf("invalid rrule in serviceDays: %w", err)
		}
	}

	return nil
}

// ServiceCalendar parses the service-day rule, or returns nil when the
// branch accepts reservations every day.
func (c *Config) ServiceCalendar() (*rrule.RRule, error) {
	if c.ServiceDays == "" {
		return nil, nil
	}
	rule, err := rrule.StrToRRule(c.ServiceDays)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule in serviceDays: %w", err)
	}
	return rule, nil
}

// findConfigFile searches for mabilisss_config.yaml in current directory
// and home directory.
func findConfigFile() (string, error) {
	configFileName := "mabilisss_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
