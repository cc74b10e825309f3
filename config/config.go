package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. It is built once at startup
// and passed by reference into the components that need it.
type Config struct {
	ServerAddr  string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	FrontendURI string // allowed CORS origin of the deployed frontend
	UploadDir   string // directory uploaded audio files are written to
	// MinIO object storage. Mirroring of uploads is enabled only when
	// MinioEndpoint is set.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	LogLevel       string
	LogPath        string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// mustEnv gets an environment variable or aborts startup if it is unset.
func mustEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8000"),
		DBHost:         getEnv("MYSQL_HOST", "mysql"), // DB service name in docker compose
		DBPort:         getEnv("MYSQL_PORT", "3306"),
		DBUser:         mustEnv("MYSQL_USER"),
		DBPassword:     mustEnv("MYSQL_PASSWORD"),
		DBName:         mustEnv("MYSQL_DATABASE"),
		FrontendURI:    mustEnv("FRONTEND_URI"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "lyricium"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPath:        getEnv("LOG_PATH", ""),
	}
}
