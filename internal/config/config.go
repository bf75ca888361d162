// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"factoryflow/internal/util"
)

// Config carries every runtime setting the commands need.
type Config struct {
	// DataDir holds the erp.csv / mes.csv / plm.csv source files.
	DataDir string
	// Addr is the HTTP listen address.
	Addr string

	LogLevel string
	LogFile  string

	GeminiAPIKey string
	GeminiModel  string
}

// Load reads the environment into a Config. When envFile is non-empty that
// file is loaded first; otherwise a .env in the working directory is tried.
// A missing .env is not an error.
func Load(envFile string) *Config {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil && envFile != "" {
		util.LogWarnf("Could not load env file %s: %v", envFile, err)
	}

	return &Config{
		DataDir:      getenv("FACTORYFLOW_DATA_DIR", "data"),
		Addr:         getenv("FACTORYFLOW_ADDR", ":3001"),
		LogLevel:     getenv("FACTORYFLOW_LOG_LEVEL", "info"),
		LogFile:      os.Getenv("FACTORYFLOW_LOG_FILE"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
