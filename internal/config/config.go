package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Solver
	SolverTimeBudgetMs int `mapstructure:"SOLVER_TIME_BUDGET_MS"`
	SolverWorkers      int `mapstructure:"SOLVER_WORKERS"`
	ObjectiveScale     int `mapstructure:"OBJECTIVE_SCALE"`
}

// Default returns the built-in solver configuration used when the
// environment cannot be loaded.
func Default() *Config {
	return &Config{
		Env:                "development",
		SolverTimeBudgetMs: 2000,
		SolverWorkers:      8,
		ObjectiveScale:     1000,
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SOLVER_TIME_BUDGET_MS", 2000)
	viper.SetDefault("SOLVER_WORKERS", 8)
	viper.SetDefault("OBJECTIVE_SCALE", 1000)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.SolverTimeBudgetMs <= 0 {
		return nil, fmt.Errorf("SOLVER_TIME_BUDGET_MS must be positive, got %d", config.SolverTimeBudgetMs)
	}
	if config.SolverWorkers <= 0 {
		return nil, fmt.Errorf("SOLVER_WORKERS must be positive, got %d", config.SolverWorkers)
	}
	if config.ObjectiveScale <= 0 {
		return nil, fmt.Errorf("OBJECTIVE_SCALE must be positive, got %d", config.ObjectiveScale)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// TimeBudget returns the solver wall-clock budget as a duration.
func (c *Config) TimeBudget() time.Duration {
	return time.Duration(c.SolverTimeBudgetMs) * time.Millisecond
}
