package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"fitness-spc/src/models"

	"gopkg.in/yaml.v3"
)

// Defaults applied to fields left empty in the YAML file.
const (
	DefaultName          = "fitness-spc"
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 8501
	DefaultLogLevel      = "INFO"
	DefaultDBType        = "sqlite"
	DefaultDBPath        = "fitness_data.db"
	DefaultBasalCalories = 2000.0
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new Config instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	return Parse(data)
}

// -----------------------------------------------------------------------------

// Parse builds a validated Config from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Default returns a validated configuration using only defaults.
func Default() *Config {
	config := &Config{MConfig: &models.MConfig{}}
	config.applyDefaults()
	return config
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Storage.DBType == "" {
		c.Storage.DBType = DefaultDBType
	}
	if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
		c.Storage.DBPath = DefaultDBPath
	}
	if c.Storage.ConnectRetries == 0 {
		c.Storage.ConnectRetries = 3
	}
	if c.Analysis.BasalCalories == nil {
		basal := DefaultBasalCalories
		c.Analysis.BasalCalories = &basal
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Storage configuration
	switch c.Storage.DBType {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Storage.DBConnectionString == "" {
			return fmt.Errorf("database connection string cannot be empty for postgres")
		}
	default:
		return fmt.Errorf("unsupported database type: %q", c.Storage.DBType)
	}
	if c.Storage.ConnectRetries < 0 {
		return fmt.Errorf("connect retries cannot be negative")
	}

	// Validate Analysis configuration
	if b := c.Analysis.BasalCalories; b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0) || *b < 0) {
		return fmt.Errorf("basal calories must be a finite non-negative number (got %v)", *b)
	}
	for name, mc := range c.Analysis.Metrics {
		if _, ok := models.KnownMetrics[name]; !ok {
			return fmt.Errorf("unknown metric '%s' in analysis.metrics", name)
		}
		if mc.LSL != nil && mc.USL != nil && *mc.LSL >= *mc.USL {
			return fmt.Errorf("metric '%s': lsl %v must be below usl %v", name, *mc.LSL, *mc.USL)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
