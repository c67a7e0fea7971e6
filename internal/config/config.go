package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	// DefaultMaxInvalidChoices bounds consecutive illegal moves a player may choose before the game is aborted.
	DefaultMaxInvalidChoices = 3
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	Token             string
	Prefork           bool
	MaxInvalidChoices int
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("OTHELLO_SERVER_HOST"),
		ServerPort:        getEnvMust("OTHELLO_SERVER_PORT"),
		RedisURL:          getEnvMust("OTHELLO_REDIS_URL"),
		PostgresURL:       getEnvMust("OTHELLO_POSTGRES_URL"),
		Token:             getEnvMust("OTHELLO_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("OTHELLO_SERVER_PREFORK"),
		MaxInvalidChoices: getEnvIntDefault("OTHELLO_MAX_INVALID_CHOICES", DefaultMaxInvalidChoices),
	}
}

// CLIConfig holds the configuration of the interactive game.
type CLIConfig struct {
	MaxInvalidChoices int
}

// LoadCLIConfig loads configuration from environment variables. All values are optional.
func LoadCLIConfig() *CLIConfig {
	return &CLIConfig{
		MaxInvalidChoices: getEnvIntDefault("OTHELLO_MAX_INVALID_CHOICES", DefaultMaxInvalidChoices),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvIntDefault returns the environment variable as a non-negative integer, or fallback if it is not set.
func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := parseNonNegativeInt(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be a non-negative integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

func parseNonNegativeInt(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}
