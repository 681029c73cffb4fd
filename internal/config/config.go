package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	EmailAPIKey string
	EmailSender string

	CloudinaryURL    string
	CloudinaryFolder string
	UploadRatePerSec int
	UploadBurst      int
}

func Load() *Config {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),

		RedisHost:     GetEnvAsString("REDIS_HOST", ""),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: GetEnvAsString("EMAIL_SENDER", "no-reply@realty.local"),

		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: GetEnvAsString("CLOUDINARY_FOLDER", "realestate"),
		UploadRatePerSec: GetEnvAsInt("UPLOAD_RATE_PER_SEC", 5),
		UploadBurst:      GetEnvAsInt("UPLOAD_BURST", 10),
	}
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
