package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr       string
	DBPath           string
	AnthropicAPIKey  string
	AnthropicModel   string
	ImagePath        string
	ImportWorkers    int
	ImportQueueSize  int
	FetchTimeoutSecs int
	LogLevel         string
	LogFormat        string
	LogFile          string
}

func Load() *Config {
	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "/data/kookboek.db"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		ImagePath:        getEnv("IMAGE_PATH", "/data/images"),
		ImportWorkers:    getEnvInt("IMPORT_WORKERS", 2),
		ImportQueueSize:  getEnvInt("IMPORT_QUEUE_SIZE", 8),
		FetchTimeoutSecs: getEnvInt("FETCH_TIMEOUT_SECONDS", 30),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
