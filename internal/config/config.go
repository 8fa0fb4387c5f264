package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis (optional; in-memory cache when empty)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Game calendar cache
	GamesCacheTTL time.Duration `mapstructure:"GAMES_CACHE_TTL"`

	// Lineup optimization
	WeeklyStartCap int `mapstructure:"WEEKLY_START_CAP"`

	// Forecast thresholds
	PercentThreshold  float64 `mapstructure:"PERCENT_THRESHOLD"`
	CountingThreshold float64 `mapstructure:"COUNTING_THRESHOLD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8084")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("GAMES_CACHE_TTL", "5m")
	viper.SetDefault("WEEKLY_START_CAP", 32)
	viper.SetDefault("PERCENT_THRESHOLD", 0.015)
	viper.SetDefault("COUNTING_THRESHOLD", 5)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.WeeklyStartCap <= 0 {
		return nil, fmt.Errorf("WEEKLY_START_CAP must be positive, got %d", cfg.WeeklyStartCap)
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
