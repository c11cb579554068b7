package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/packer/pkg/packer"
)

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	LogLevel       string `yaml:"log_level"`
	LogEncoding    string `yaml:"log_encoding"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	LogLevel       string `yaml:"log_level"`
	LogEncoding    string `yaml:"log_encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	CurrencySymbol *string
	LogLevel       *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Environment variables sit below the YAML file
	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		CurrencySymbol: packer.DefaultCurrencySymbol,
		LogLevel:       defaultLogLevel,
		LogEncoding:    defaultLogEncoding,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.CurrencySymbol != "" {
		cfg.CurrencySymbol = yamlCfg.CurrencySymbol
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogEncoding != "" {
		cfg.LogEncoding = yamlCfg.LogEncoding
	}
}

// The currency symbol is taken verbatim so that symbols with surrounding
// spaces can be configured.
func applyEnvConfig(cfg *Config) {
	if symbol := os.Getenv("PACKER_CURRENCY_SYMBOL"); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	if level := strings.TrimSpace(os.Getenv("PACKER_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("PACKER_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.CurrencySymbol != nil && *overrides.CurrencySymbol != "" {
		cfg.CurrencySymbol = *overrides.CurrencySymbol
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	return nil
}
