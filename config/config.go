// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Redis   RedisConfig
	Rewards RewardsConfig
	Profile ProfileConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig holds the session store configuration. The store is SQLite
// backed but lives in process memory only; nothing survives a restart.
type StoreConfig struct {
	DSN          string
	MaxOpenConns int
}

// RedisConfig holds Redis configuration for the notification feed.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RewardsConfig holds the experience points granted per action.
type RewardsConfig struct {
	TaskCreated         int
	TaskCompleted       int
	TransactionRecorded int
	GoalCreated         int
	GoalCompletedBonus  int
}

// ProfileConfig holds the default user profile settings.
type ProfileConfig struct {
	Name string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			DSN: getEnv("STORE_DSN", "file::memory:?cache=shared"),
			// Shared-cache in-memory SQLite needs a single connection;
			// additional connections would each see an empty database
			// once the first one closes.
			MaxOpenConns: getEnvAsInt("STORE_MAX_OPEN_CONNS", 1),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Rewards: RewardsConfig{
			TaskCreated:         getEnvAsInt("XP_TASK_CREATED", 10),
			TaskCompleted:       getEnvAsInt("XP_TASK_COMPLETED", 20),
			TransactionRecorded: getEnvAsInt("XP_TRANSACTION_RECORDED", 15),
			GoalCreated:         getEnvAsInt("XP_GOAL_CREATED", 25),
			GoalCompletedBonus:  getEnvAsInt("XP_GOAL_COMPLETED_BONUS", 50),
		},
		Profile: ProfileConfig{
			Name: getEnv("PROFILE_NAME", "Pedro Lucas"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
