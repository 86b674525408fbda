package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// MongoDB
	MongoURI string
	MongoDB  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Redis (optional, enables the TTS audio cache)
	RedisURL string

	// Text-to-speech
	TTSLanguage string

	// CORS
	CORSOrigin string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Env:          getEnvOrDefault("ENV", "development"),
		MongoURI:     mustGetEnv("MONGO_URI"),
		MongoDB:      getEnvOrDefault("MONGO_DB", "speechdown"),
		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		RedisURL:     getEnvOrDefault("REDIS_URL", ""),
		TTSLanguage:  getEnvOrDefault("TTS_LANGUAGE", "es"),
		CORSOrigin:   getEnvOrDefault("CORS_ORIGIN", "*"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
