package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"
)

// Credential is the identity provider's view of a signed-in user.
type Credential struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// Client is an interface for the identity provider (sign-in and password
// reset). All operations are single attempts against the provider's REST API.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
}

// identityClient is the concrete REST implementation of the Client.
type identityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new identity provider client.
func NewClient(cfg *config.Config) Client {
	return &identityClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.IdentityBaseURL, "/"),
		apiKey:     cfg.IdentityAPIKey,
	}
}

// SignIn exchanges an email/password credential for a provider session.
func (c *identityClient) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var cred Credential
	if err := c.post(ctx, "accounts:signInWithPassword", body, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// SendPasswordReset asks the provider to email a password-reset code.
func (c *identityClient) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return c.post(ctx, "accounts:sendOobCode", body, nil)
}

// ConfirmPasswordReset redeems a reset code against a new password.
func (c *identityClient) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	body := map[string]any{
		"oobCode":     code,
		"newPassword": newPassword,
	}
	return c.post(ctx, "accounts:resetPassword", body, nil)
}

func (c *identityClient) post(ctx context.Context, endpoint string, body any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeProviderError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeProviderError extracts the provider's error code from a non-200
// response. Codes sometimes arrive with a suffix ("TOO_MANY_ATTEMPTS_TRY_LATER
// : retry later"), so only the first token counts.
func decodeProviderError(resp *http.Response) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error.Message == "" {
		return &ProviderError{Code: fmt.Sprintf("HTTP_%d", resp.StatusCode)}
	}

	code, _, _ := strings.Cut(payload.Error.Message, " ")
	return &ProviderError{Code: strings.TrimSpace(code)}
}
