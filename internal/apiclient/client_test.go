package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"invoicer/internal/token"
	"invoicer/pkg/logging"
)

func newTestStore(t *testing.T, pair token.Pair) *token.Store {
	t.Helper()
	store, err := token.NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if pair.AccessToken != "" || pair.RefreshToken != "" {
		if err := store.Set(pair); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	return store
}

func TestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "ada"})
	}))
	defer srv.Close()

	store := newTestStore(t, token.Pair{AccessToken: "abc", RefreshToken: "ref"})
	c := New(srv.URL, store, logging.Setup("local"))

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestRefreshAndRetryOn401(t *testing.T) {
	var meCalls, refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/me":
			meCalls++
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "ada"})
		case "/api/v1/auth/refresh":
			refreshCalls++
			var body RefreshRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.RefreshToken != "ref" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "fresh", RefreshToken: "ref2"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t, token.Pair{AccessToken: "stale", RefreshToken: "ref"})
	c := New(srv.URL, store, logging.Setup("local"))

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me after refresh: %v", err)
	}
	if user.Username != "ada" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly 1 refresh call, got %d", refreshCalls)
	}
	if meCalls != 2 {
		t.Fatalf("expected original call + one retry, got %d", meCalls)
	}
	if store.AccessToken() != "fresh" || store.RefreshToken() != "ref2" {
		t.Fatalf("rotated tokens not stored: %+v", store.Tokens())
	}
}

func TestFailedRefreshClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t, token.Pair{AccessToken: "stale", RefreshToken: "bad"})
	c := New(srv.URL, store, logging.Setup("local"))

	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if store.LoggedIn() {
		t.Fatal("tokens should be cleared after failed refresh")
	}
}

func TestAPIErrorCarriesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "due_date is required"})
	}))
	defer srv.Close()

	store := newTestStore(t, token.Pair{AccessToken: "abc", RefreshToken: "ref"})
	c := New(srv.URL, store, logging.Setup("local"))

	_, err := c.CreateInvoice(context.Background(), CreateInvoiceRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Detail != "due_date is required" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	store := newTestStore(t, token.Pair{AccessToken: "abc", RefreshToken: "ref"})
	c := New(srv.URL, store, logging.Setup("local"))

	_, err := c.GetInvoice(context.Background(), 7)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic message, got %q", apiErr.Detail)
	}
}
