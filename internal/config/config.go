package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every field maps to one environment
// variable; .env is loaded first when present so local development needs no
// exported shell state.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string

	WeatherAPIURL string
	WeatherAPIKey string

	AssistantAPIURL string
	AssistantAPIKey string

	RedisAddr     string
	RedisPassword string

	CORSAllowedOrigins string
}

// Load reads configuration from the environment. DATABASE_URL and JWT_SECRET
// are required; everything else has a default or disables the feature that
// needs it (weather, assistant, redis cache).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: must("DATABASE_URL"),
		JWTSecret:   must("JWT_SECRET"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		WeatherAPIURL: getenv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),

		AssistantAPIURL: getenv("ASSISTANT_API_URL", "https://api.openai.com/v1"),
		AssistantAPIKey: os.Getenv("ASSISTANT_API_KEY"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
