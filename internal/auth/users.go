package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"
)

// User is an application user record from the external user store.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserStore queries the external user-record store.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type userStoreClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewUserStore creates a client for the external user-record store.
func NewUserStore(cfg *config.Config) UserStore {
	return &userStoreClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.UserStoreURL, "/"),
	}
}

// GetByEmail returns the first user record matching the email, or nil when
// no record matches.
func (s *userStoreClient) GetByEmail(ctx context.Context, email string) (*User, error) {
	reqURL := fmt.Sprintf("%s/users?email=%s", s.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user store error: status %d", resp.StatusCode)
	}

	var payload struct {
		Users []User `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(payload.Users) == 0 {
		return nil, nil
	}
	return &payload.Users[0], nil
}
