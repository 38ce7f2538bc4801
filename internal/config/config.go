package config

import (
	"os"
	"strconv"
)

// Config holds all environment-sourced settings.
type Config struct {
	// Database
	DatabaseURL string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Email
	SMTPHost   string
	SMTPPort   int
	EmailUser  string
	EmailPass  string
	AdminEmail string

	// Server
	Host string
	Port int

	// File uploads
	MaxFileSize int64
	UploadDir   string

	// Resume storage backend: "local" or "minio"
	ResumeStorage  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// Admin surface
	AdminJWTSecret string
}

// Load reads configuration from the environment, falling back to development
// defaults.
func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getEnvInt("SMTP_PORT", 587),
		EmailUser:  getEnv("EMAIL_USER", ""),
		EmailPass:  getEnv("EMAIL_PASS", ""),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@homekitchen.com"),

		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnvInt("PORT", 8000),

		MaxFileSize: getEnvInt64("MAX_FILE_SIZE", 5*1024*1024),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),

		ResumeStorage:  getEnv("RESUME_STORAGE", "local"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "") == "true",
		MinioBucket:    getEnv("MINIO_BUCKET", "resumes"),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
