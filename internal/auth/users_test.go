package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"
)

func TestGetByEmail(t *testing.T) {
	t.Run("FirstMatch", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("email"); got != "jane@test.com" {
				t.Errorf("Expected email query 'jane@test.com', got %q", got)
			}
			fmt.Fprint(w, `{"users": [
				{"id": "u1", "email": "jane@test.com", "name": "Jane"},
				{"id": "u2", "email": "jane@test.com", "name": "Duplicate"}
			]}`)
		}))
		defer ts.Close()

		store := NewUserStore(&config.Config{UserStoreURL: ts.URL})
		user, err := store.GetByEmail(context.Background(), "jane@test.com")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if user == nil || user.ID != "u1" {
			t.Errorf("Expected first match u1, got %+v", user)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"users": []}`)
		}))
		defer ts.Close()

		store := NewUserStore(&config.Config{UserStoreURL: ts.URL})
		user, err := store.GetByEmail(context.Background(), "ghost@test.com")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if user != nil {
			t.Errorf("Expected nil for no match, got %+v", user)
		}
	})

	t.Run("StoreError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		store := NewUserStore(&config.Config{UserStoreURL: ts.URL})
		if _, err := store.GetByEmail(context.Background(), "jane@test.com"); err == nil {
			t.Error("Expected an error for a 500 response")
		}
	})
}
