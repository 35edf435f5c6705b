package models

// MConfig Structure
type MConfig struct {
	Name     string          `yaml:"name"`
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	LogLevel string          `yaml:"log_level"`
	Storage  MStorageConfig  `yaml:"storage"`
	Analysis MAnalysisConfig `yaml:"analysis"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	Schema             string `yaml:"schema"`         // Postgres only
	ConnectRetries     int    `yaml:"connect_retries"` // Optional
}

type MAnalysisConfig struct {
	BasalCalories *float64                 `yaml:"basal_calories"`
	Metrics       map[string]MMetricConfig `yaml:"metrics"`
}

// MMetricConfig overrides the default policy of one metric.
type MMetricConfig struct {
	ClampLCL *bool    `yaml:"clamp_lcl"`
	LSL      *float64 `yaml:"lsl"`
	USL      *float64 `yaml:"usl"`
}
