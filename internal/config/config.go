package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process needs, resolved once at startup.
type Config struct {
	AppPort   string
	DBHost    string
	DBPort    int
	DBUser    string
	DBPass    string
	DBName    string
	JWTSecret string
	LogLevel  string
}

// Load reads configuration from environment variables. DB_HOST, DB_USER and
// DB_PASS have no defaults; a missing one is fatal and names every missing
// variable, so a misconfigured deployment fails before serving traffic.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "tienda")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:   v.GetString("APP_PORT"),
		DBHost:    v.GetString("DB_HOST"),
		DBPort:    v.GetInt("DB_PORT"),
		DBUser:    v.GetString("DB_USER"),
		DBPass:    v.GetString("DB_PASS"),
		DBName:    v.GetString("DB_NAME"),
		JWTSecret: v.GetString("JWT_SECRET"),
		LogLevel:  v.GetString("LOG_LEVEL"),
	}

	var missing []string
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.DBPass == "" {
		missing = append(missing, "DB_PASS")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("set environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
