package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withUserInfoServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	previous := GoogleUserInfoURL
	GoogleUserInfoURL = srv.URL
	t.Cleanup(func() {
		GoogleUserInfoURL = previous
		srv.Close()
	})
}

func TestFetchGoogleUser(t *testing.T) {
	withUserInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"email":          "lan@example.com",
			"email_verified": true,
			"name":           "Lan",
		})
	})

	user, err := FetchGoogleUser(context.Background(), "access-123")
	if err != nil {
		t.Fatalf("FetchGoogleUser: %v", err)
	}
	if user.Email != "lan@example.com" || user.Name != "Lan" {
		t.Errorf("unexpected user %+v", user)
	}

	if _, err := FetchGoogleUser(context.Background(), "wrong"); err == nil {
		t.Error("expected error for rejected token")
	}
}

func TestFetchGoogleUserRequiresVerifiedEmail(t *testing.T) {
	withUserInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"email": "lan@example.com", "email_verified": false})
	})

	_, err := FetchGoogleUser(context.Background(), "access-123")
	if !errors.Is(err, ErrGoogleEmailUnverified) {
		t.Fatalf("expected ErrGoogleEmailUnverified, got %v", err)
	}
}
