package config

import (
	"os"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "gemini_key")
	t.Setenv("IDENTITY_API_KEY", "identity_key")
	t.Setenv("USER_STORE_URL", "http://users.test")
	t.Setenv("SESSION_SECRET", "secret")
}

func TestNewFromEnv(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		setRequired(t)

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
		if cfg.UserStoreURL != "http://users.test" {
			t.Errorf("Expected UserStoreURL to be 'http://users.test', got '%s'", cfg.UserStoreURL)
		}
		if cfg.ListenAddr != defaultListenAddr {
			t.Errorf("Expected default listen address, got '%s'", cfg.ListenAddr)
		}
		if cfg.GeminiModel != defaultGeminiModel {
			t.Errorf("Expected default model, got '%s'", cfg.GeminiModel)
		}
		if cfg.SessionTTL != defaultSessionTTL {
			t.Errorf("Expected default session TTL, got %v", cfg.SessionTTL)
		}
	})

	t.Run("MissingGeminiAPIKey", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
		expectedError := "GEMINI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("MissingIdentityAPIKey", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("IDENTITY_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing IDENTITY_API_KEY, got nil")
		}
	})

	t.Run("MissingSessionSecret", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("SESSION_SECRET")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing SESSION_SECRET, got nil")
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("GEMINI_MODEL", "gemini-test")
		t.Setenv("SESSION_TTL", "2h")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.ListenAddr != ":9090" {
			t.Errorf("Expected ':9090', got '%s'", cfg.ListenAddr)
		}
		if cfg.GeminiModel != "gemini-test" {
			t.Errorf("Expected 'gemini-test', got '%s'", cfg.GeminiModel)
		}
		if cfg.SessionTTL != 2*time.Hour {
			t.Errorf("Expected 2h TTL, got %v", cfg.SessionTTL)
		}
	})

	t.Run("BadSessionTTL", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SESSION_TTL", "soon")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid SESSION_TTL, got nil")
		}
	})
}
