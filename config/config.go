package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Every secret comes from the
// environment; nothing is hardcoded in source.
type Config struct {
	AppPort string
	AppMode string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	OpenAIAPIKey string
	ChatModel    string
	ImageModel   string

	MailsAPIKey  string
	MailsBaseURL string

	StaticDir     string
	ProLogoQuota  int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		AppMode:       getEnv("APP_MODE", "debug"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "visionflow"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		ChatModel:     getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
		ImageModel:    getEnv("IMAGE_MODEL", "dall-e-3"),
		MailsAPIKey:   getEnv("MAILS_API_KEY", ""),
		MailsBaseURL:  getEnv("MAILS_BASE_URL", "https://api.mails.so"),
		StaticDir:     getEnv("STATIC_DIR", "./web"),
		ProLogoQuota:  getEnvAsInt("PRO_LOGO_QUOTA", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
