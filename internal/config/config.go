package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Storage   StorageConfig
	Worker    WorkerConfig
	Embedding EmbeddingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type StorageConfig struct {
	UploadPath        string
	MaxFileSize       int64
	AllowedExtensions []string
}

type WorkerConfig struct {
	Concurrency  int
	QueueSize    int
	PollInterval time.Duration
}

// EmbeddingConfig drives the semantic capability. An empty APIKey disables it.
type EmbeddingConfig struct {
	APIKey        string
	Model         string
	FallbackModel string
	ChunkSize     int
	CacheSize     int
}

// Load reads .env when present, then the process environment.
// The second return reports whether a .env file was loaded.
func Load() (*Config, bool) {
	loaded := godotenv.Load() == nil

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
		Storage: StorageConfig{
			UploadPath:        getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 16*1024*1024),
			AllowedExtensions: getEnvAsList("ALLOWED_EXTENSIONS", []string{".txt", ".pdf", ".docx"}),
		},
		Worker: WorkerConfig{
			Concurrency:  getEnvAsInt("WORKER_CONCURRENCY", 3),
			QueueSize:    getEnvAsInt("WORKER_QUEUE_SIZE", 100),
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", "10s"),
		},
		Embedding: EmbeddingConfig{
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			Model:         getEnv("EMBEDDING_MODEL", "gemini-embedding-001"),
			FallbackModel: getEnv("EMBEDDING_FALLBACK_MODEL", "text-embedding-004"),
			ChunkSize:     getEnvAsInt("EMBEDDING_CHUNK_SIZE", 6000),
			CacheSize:     getEnvAsInt("EMBEDDING_CACHE_SIZE", 256),
		},
	}, loaded
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value and lowercases each item.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if !strings.HasPrefix(item, ".") {
			item = "." + item
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
