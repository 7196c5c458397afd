package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	MongoURI string
	MongoDB  string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret        string
	JWTExpireHours   int
	CookieExpireDays int

	CloudinaryURL string

	SendGridAPIKey        string
	SendGridResetTemplate string
	SendGridFromEmail     string
	SendGridFromName      string

	// ResetURLBase is the public base URL embedded in reset emails,
	// e.g. https://shop.example.com. The raw token is appended under
	// /password/reset/.
	ResetURLBase string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		ServerPort: getEnv("PORT", "8080"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "sellapi"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		JWTExpireHours:   getEnvInt("JWT_EXPIRE_HOURS", 24),
		CookieExpireDays: getEnvInt("COOKIE_EXPIRE_DAYS", 1),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		SendGridAPIKey:        os.Getenv("SENDGRID_API_KEY"),
		SendGridResetTemplate: os.Getenv("SENDGRID_RESET_TEMPLATE_ID"),
		SendGridFromEmail:     getEnv("SENDGRID_FROM_EMAIL", "no-reply@localhost"),
		SendGridFromName:      getEnv("SENDGRID_FROM_NAME", "Seller Dashboard"),

		ResetURLBase: getEnv("RESET_URL_BASE", "http://localhost:8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
