package logger

import (
	"os"
	"strings"
)

// ConfigFromEnv reads logger settings from the environment.
func ConfigFromEnv() *Config {
	config := &Config{
		Level:  "info",
		Format: "text",
	}

	debug := os.Getenv("DEBUG")
	if isTrue(debug) {
		config.Level = "debug"
	}

	// LOG_LEVEL takes precedence over DEBUG
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}

	return config
}

// NewFromEnv creates a logger configured from the environment.
func NewFromEnv() (Logger, error) {
	config := ConfigFromEnv()
	return New(
		WithLevel(config.Level),
		WithFormat(config.Format),
	)
}

// isTrue reports whether a string represents a truthy value.
func isTrue(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
