// Package config loads the environment configuration for a pricecast run.
// Only the dataset location, the optional download source, the chart output
// path, and the log level are configurable; all analysis thresholds are
// fixed constants in the analysis package.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the environment-derived settings, prefixed PRICECAST_.
type Config struct {
	// DatasetPath is where the pricing CSV lives (or is downloaded to).
	DatasetPath string `envconfig:"DATASET_PATH" default:"data/electronics_pricing.csv"`
	// DatasetURL is the optional source to fetch the CSV from when absent.
	DatasetURL string `envconfig:"DATASET_URL"`
	// ChartPath is where the JSON chart export is written.
	ChartPath string `envconfig:"CHART_PATH" default:"data/pricecast_charts.json"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env if present, then the PRICECAST_* environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	var cfg Config
	if err := envconfig.Process("pricecast", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
