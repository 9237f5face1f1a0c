package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Ingest struct {
		Enabled   bool   `yaml:"enabled"`
		SourceURL string `yaml:"source_url"`
		Timeout   string `yaml:"timeout"`
	} `yaml:"ingest"`
}

// LoadConfig loads configuration from a YAML file and environment variables.
// The file is optional; environment variables win over file values.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Ingest.Enabled = true
	config.Ingest.SourceURL = ""
	config.Ingest.Timeout = "10s"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)

	config.Ingest.Enabled = GetEnvAsBool("INGEST_ENABLED", config.Ingest.Enabled)
	config.Ingest.SourceURL = GetEnv("INGEST_SOURCE_URL", config.Ingest.SourceURL)
	config.Ingest.Timeout = GetEnv("INGEST_TIMEOUT", config.Ingest.Timeout)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := time.ParseDuration(config.Ingest.Timeout); err != nil {
		return fmt.Errorf("invalid ingest timeout format: %w", err)
	}

	return nil
}

// IngestTimeout returns the ingest HTTP timeout as a duration.
// validateConfig has already ensured the string parses.
func (c *Config) IngestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Ingest.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
