package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	FrontendURL string
	RedisURL    string

	// Rate limit window in minutes and max requests per window.
	RateLimitWindow int
	RateLimitMax    int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "scamlens"),
		FrontendURL:     getEnv("FRONTEND_URL", "*"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 15),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
	}
}

// IsDevelopment reports whether detailed error messages may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
