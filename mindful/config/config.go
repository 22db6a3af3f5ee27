package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	Port        string
	SecretKey   string
	CORSOrigins []string

	CrisisHotline      string
	HistoryWindow      int
	RateLimitPerMinute int
	MaxMessageLength   int
	LexiconFile        string

	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string
	GoogleAPIKey    string
	GoogleModel     string

	AIMaxTokens   int
	AITemperature float64
}

func LoadConfig() Config {
	return Config{
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", ""),
		DBName:     getEnv("DB_NAME", ""),

		Port:        getEnv("PORT", "8000"),
		SecretKey:   getEnv("SECRET_KEY", "dev-secret-key"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8000")),

		CrisisHotline:      getEnv("CRISIS_HOTLINE", "1900-9099"),
		HistoryWindow:      getEnvInt("HISTORY_WINDOW", 3),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 20),
		MaxMessageLength:   getEnvInt("MAX_MESSAGE_LENGTH", 1000),
		LexiconFile:        getEnv("LEXICON_FILE", ""),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		GoogleModel:     getEnv("GOOGLE_MODEL", "gemini-pro"),

		AIMaxTokens:   getEnvInt("AI_MAX_TOKENS", 500),
		AITemperature: getEnvFloat("AI_TEMPERATURE", 0.7),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func splitCSV(val string) []string {
	if val == "" {
		return []string{}
	}
	parts := strings.Split(val, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
