package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir  string
	Port     string
	LogLevel string
}

func Load() Config {
	return Config{
		DataDir:  envOrDefault("DATA_DIR", "./data"),
		Port:     envOrDefault("PORT", "5007"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),
	}
}

// Document paths, all under DataDir. Each document also gets a sibling
// .backup file managed by the storage layer.

func (config Config) HabitsPath() string { return filepath.Join(config.DataDir, "habits.json") }
func (config Config) TasksPath() string  { return filepath.Join(config.DataDir, "tasks.json") }
func (config Config) BudgetPath() string { return filepath.Join(config.DataDir, "budget.json") }
func (config Config) NotesPath() string  { return filepath.Join(config.DataDir, "notes.json") }

func (config Config) SlogLevel() slog.Level {
	switch config.LogLevel {
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

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
