// Package config resolves runtime settings from flags and the environment.
//
// Environment variables (a .env file in the working directory is loaded
// first when present):
//
//	TIPSPLIT_MIN_SPLIT      smallest split count (default 1)
//	TIPSPLIT_MAX_SPLIT      largest split count (default 10)
//	TIPSPLIT_SLIDER_STEPS   intermediate slider stops (default 5)
//	TIPSPLIT_CURRENCY       currency symbol (default "$")
//	TIPSPLIT_LOG_FILE       log destination (default .tipsplit/tipsplit.log, "stderr" for console)
//	TIPSPLIT_METRICS_FILE   Prometheus textfile written on exit
//
// Flags take precedence over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mmynk/tipsplit/internal/form"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Split       form.Range
	SliderSteps int
	Currency    string
	LogFile     string
	MetricsFile string
	Verbose     bool
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, raw)
	}
	return v, nil
}

// LoadDotEnv loads .env into the process environment if the file exists.
// Variables already set are left alone.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load parses args (without the program name) on top of environment defaults.
func Load(args []string) (*Config, error) {
	minSplit, err := getEnvInt("TIPSPLIT_MIN_SPLIT", form.DefaultRange.Min)
	if err != nil {
		return nil, err
	}
	maxSplit, err := getEnvInt("TIPSPLIT_MAX_SPLIT", form.DefaultRange.Max)
	if err != nil {
		return nil, err
	}
	steps, err := getEnvInt("TIPSPLIT_SLIDER_STEPS", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("tipsplit", flag.ContinueOnError)
	fs.IntVar(&cfg.Split.Min, "min-split", minSplit, "smallest number of people splitting the bill")
	fs.IntVar(&cfg.Split.Max, "max-split", maxSplit, "largest number of people splitting the bill")
	fs.IntVar(&cfg.SliderSteps, "slider-steps", steps, "intermediate stops on the tip slider")
	fs.StringVar(&cfg.Currency, "currency", getEnv("TIPSPLIT_CURRENCY", "$"), "currency symbol shown before amounts")
	fs.StringVar(&cfg.LogFile, "log-file", getEnv("TIPSPLIT_LOG_FILE", ".tipsplit/tipsplit.log"), "file to write logs to (use \"stderr\" to log to console)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", getEnv("TIPSPLIT_METRICS_FILE", ""), "write Prometheus metrics to this textfile on exit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the split range and slider settings.
func (c *Config) Validate() error {
	if err := c.Split.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.SliderSteps < 0 || c.SliderSteps > 99 {
		return fmt.Errorf("%w: slider steps must be between 0 and 99, got %d", ErrInvalidConfig, c.SliderSteps)
	}
	return nil
}
