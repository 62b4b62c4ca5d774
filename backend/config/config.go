package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultGenerationURL = "https://api.mistral.ai/v1/chat/completions"

// Config is built once at startup and shared read-only by every component.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	ServerPort  string
	CORSOrigins string

	// Generation API
	OfflineFallback   bool
	MistralAPIKey     string
	MistralModel      string
	MistralURL        string
	GenerationTimeout time.Duration

	// Avatar storage, optional
	AvatarBucket          string
	AvatarEndpoint        string
	AvatarRegion          string
	AvatarAccessKeyID     string
	AvatarSecretAccessKey string
	AvatarPublicURL       string
}

// LoadConfig reads the environment, after an optional .env file.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	ttlMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "1440"))
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}
	if ttlMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", ttlMinutes)
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://quiz.db"),
		JWTSecret:   getEnv("SECRET_KEY", "change_this_secret_for_dev"),
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute,
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173"),

		OfflineFallback:   parseFlag(getEnv("USE_OFFLINE_FALLBACK", "false")),
		MistralAPIKey:     getEnv("MISTRAL_API_KEY", ""),
		MistralModel:      getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralURL:        getEnv("MISTRAL_API_URL", defaultGenerationURL),
		GenerationTimeout: 20 * time.Second,

		AvatarBucket:          getEnv("AVATAR_BUCKET", ""),
		AvatarEndpoint:        getEnv("AVATAR_ENDPOINT", ""),
		AvatarRegion:          getEnv("AVATAR_REGION", "auto"),
		AvatarAccessKeyID:     getEnv("AVATAR_ACCESS_KEY_ID", ""),
		AvatarSecretAccessKey: getEnv("AVATAR_SECRET_ACCESS_KEY", ""),
		AvatarPublicURL:       getEnv("AVATAR_PUBLIC_URL", ""),
	}, nil
}

// UseOfflineGeneration reports whether quiz generation must skip the external API.
func (c *Config) UseOfflineGeneration() bool {
	return c.OfflineFallback || c.MistralAPIKey == ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
