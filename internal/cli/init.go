// Package cli provides common initialization utilities shared by
// cmd/turni and cmd/turni-worker.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"turni/internal/config"
	"turni/internal/log"
)

// SetupLogger initializes structured logging and sets it as the default.
// Logs go to stderr so that report output on stdout stays clean.
func SetupLogger(component string) *log.Logger {
	logger := log.New(log.Config{
		Level:     logLevel(),
		Component: component,
		Output:    os.Stderr,
	})
	log.SetDefault(logger)
	return logger
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
