// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TONTINE_PORT.
const EnvPrefix = "TONTINE"

// Config holds the server settings.
type Config struct {
	DBPath         string
	Port           int
	LogLevel       string
	JWTSecret      string
	TokenDuration  time.Duration
	SendGridAPIKey string
	FromEmail      string
	AppName        string
	MetricsEnabled bool
	WatchBuffer    int
}

// Load reads the configuration. envFile is loaded first if it exists; a
// missing file is not an error. Values already set in the environment win
// over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("db_path", "./data/tontine.db")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_duration", 24*time.Hour)
	v.SetDefault("sendgrid_api_key", "")
	v.SetDefault("from_email", "noreply@localhost")
	v.SetDefault("app_name", "Tontine")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("watch_buffer", 16)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DBPath:         v.GetString("db_path"),
		Port:           v.GetInt("port"),
		LogLevel:       v.GetString("log_level"),
		JWTSecret:      v.GetString("jwt_secret"),
		TokenDuration:  v.GetDuration("token_duration"),
		SendGridAPIKey: v.GetString("sendgrid_api_key"),
		FromEmail:      v.GetString("from_email"),
		AppName:        v.GetString("app_name"),
		MetricsEnabled: v.GetBool("metrics_enabled"),
		WatchBuffer:    v.GetInt("watch_buffer"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt_secret is required (set " + EnvPrefix + "_JWT_SECRET)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.WatchBuffer <= 0 {
		return fmt.Errorf("watch_buffer must be positive, got %d", c.WatchBuffer)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
