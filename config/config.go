package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the connection settings for the services the portal talks to.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	// Blob store credentials and the values the identification-document
	// view URL is derived from.
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	StorageEndpoint     string
	BucketID            string
	ProjectID           string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	JWTSecret        string
	AdminEmail       string
	AdminPasskeyHash string
}

// Load reads configuration from the environment. A .env file is used when
// present so local development matches deployment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		StorageEndpoint:     os.Getenv("STORAGE_ENDPOINT"),
		BucketID:            os.Getenv("STORAGE_BUCKET_ID"),
		ProjectID:           os.Getenv("STORAGE_PROJECT_ID"),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  smtpPort,
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		JWTSecret:        getEnv("JWT_SECRET", "solid_secret_key"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPasskeyHash: os.Getenv("ADMIN_PASSKEY_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
