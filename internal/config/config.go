// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port       string `mapstructure:"PORT"`
	SecretKey  string `mapstructure:"SECRET_KEY"`
	DBPath     string `mapstructure:"DB_PATH"`
	UploadsDir string `mapstructure:"UPLOADS_DIR"`
	Env        string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults
	// are enough to run.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8217")
	viper.SetDefault("SECRET_KEY", "change-me-in-production")
	viper.SetDefault("DB_PATH", "parlor.db")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH is required")
	}
	if c.UploadsDir == "" {
		return errors.New("UPLOADS_DIR is required")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	if isProduction {
		if c.SecretKey == "change-me-in-production" {
			return errors.New("SECRET_KEY must be changed from the default value in production")
		}
		if len(c.SecretKey) < 32 {
			return errors.New("SECRET_KEY must be at least 32 characters in production")
		}
	} else if len(c.SecretKey) < 32 {
		log.Println("WARNING: SECRET_KEY is shorter than 32 characters. Consider using a stronger secret for production.")
	}

	return nil
}
