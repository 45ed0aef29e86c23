// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	autoMigrate    = pflag.Bool("auto-migrate", true, "Runs database migrations on startup")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validEnvs      = []string{"development", "production"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")

	v.BindEnv("host.port", "PORT")

	v.BindEnv("database.url", "DATABASE_URL")

	v.BindEnv("jwt.secret", "JWT_SECRET")

	//
	// Defaults
	//
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 3000)

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional, everything can come from the environment
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if !slices.Contains(validEnvs, v.GetString("app.env")) {
		return errors.New("invalid app env provided, must be development or production")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("database.url") == "" {
		return errors.New("database.url is missing, set the DATABASE_URL environment variable")
	}

	// The JWT secret is deliberately not validated here. Signing returns
	// an explicit error on the first request that needs it instead.
	return nil
}

// IsProduction reports whether app.env is set to production. Controls
// stack trace exposure and the Secure flag on auth cookies.
func IsProduction() bool {
	return v.GetString("app.env") == "production"
}

// AutoMigrate reports whether the schema should be migrated on startup
func AutoMigrate() bool {
	return *autoMigrate
}
