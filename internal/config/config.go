package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Journal  JournalConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RecordingsDir      string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider    string // "gemini" or "ollama"
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	GeminiAPIKey         string
	LLMProvider          string // "ollama" or "lmstudio"
	LLMModel             string // e.g. "llama3", "qwen2.5"
	LMStudioBaseURL      string
	OCRBaseURL           string // OCR inference sidecar
	ASRBaseURL           string // ASR inference sidecar
}

type JournalConfig struct {
	Topic         string // session-end work queue topic
	TopK          int
	MinSimilarity float64
	GenTimeout    time.Duration
	CacheBackend  string // "memory" or "redis"
	CacheTTL      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8888,http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RecordingsDir:      getEnv("RECORDINGS_DIR", defaultRecordingsDir()),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiAPIKey:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
			LLMProvider:          getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:             getEnv("LLM_MODEL", "llama3"),
			LMStudioBaseURL:      getEnv("LMSTUDIO_BASE_URL", "http://localhost:1234"),
			OCRBaseURL:           getEnv("OCR_BASE_URL", "http://localhost:8601"),
			ASRBaseURL:           getEnv("ASR_BASE_URL", "http://localhost:8602"),
		},
		Journal: JournalConfig{
			Topic:         getEnv("SESSION_END_TOPIC_NAME", "SESSION_END"),
			TopK:          getEnvAsInt("JOURNAL_TOP_K", 3),
			MinSimilarity: getEnvAsFloat("JOURNAL_MIN_SIMILARITY", 0.0),
			GenTimeout:    time.Duration(getEnvAsInt("JOURNAL_GEN_TIMEOUT_SECONDS", 120)) * time.Second,
			CacheBackend:  getEnv("JOURNAL_CACHE_BACKEND", "memory"),
			CacheTTL:      time.Duration(getEnvAsInt("JOURNAL_CACHE_TTL_MINUTES", 60)) * time.Minute,
		},
	}
}

func defaultRecordingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "recordings"
	}
	return home + "/EdgeJournal/recordings"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
