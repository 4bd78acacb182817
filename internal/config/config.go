package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	ListenAddr string

	GeminiAPIKey string
	GeminiModel  string

	// Identity provider (sign-in, password reset)
	IdentityAPIKey  string
	IdentityBaseURL string

	// External user-record store (lookup by email)
	UserStoreURL string

	SessionSecret string
	SessionTTL    time.Duration
}

const (
	defaultListenAddr      = ":8080"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultIdentityBaseURL = "https://identitytoolkit.googleapis.com/v1"
	defaultSessionTTL      = 24 * time.Hour
)

// NewFromEnv creates a new Config object from environment variables.
// A .env file in the working directory is loaded first when present.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	identityAPIKey := os.Getenv("IDENTITY_API_KEY")
	if identityAPIKey == "" {
		return nil, fmt.Errorf("IDENTITY_API_KEY environment variable not set")
	}

	userStoreURL := os.Getenv("USER_STORE_URL")
	if userStoreURL == "" {
		return nil, fmt.Errorf("USER_STORE_URL environment variable not set")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable not set")
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = defaultGeminiModel
	}

	identityBaseURL := os.Getenv("IDENTITY_BASE_URL")
	if identityBaseURL == "" {
		identityBaseURL = defaultIdentityBaseURL
	}

	sessionTTL := defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL is not a valid duration: %w", err)
		}
		sessionTTL = parsed
	}

	return &Config{
		ListenAddr:      listenAddr,
		GeminiAPIKey:    geminiAPIKey,
		GeminiModel:     geminiModel,
		IdentityAPIKey:  identityAPIKey,
		IdentityBaseURL: identityBaseURL,
		UserStoreURL:    userStoreURL,
		SessionSecret:   sessionSecret,
		SessionTTL:      sessionTTL,
	}, nil
}
