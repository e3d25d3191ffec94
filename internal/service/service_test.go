package service

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"invoicer/internal/apiclient"
	"invoicer/internal/token"

	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	api    *apiclient.Client
	tokens *token.Store
}

// newEnv stands up a fake backend and a client logged in against it.
func newEnv(t *testing.T, handler http.Handler) testEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := token.NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(token.Pair{AccessToken: "access", RefreshToken: "refresh"}); err != nil {
		t.Fatal(err)
	}

	return testEnv{api: apiclient.New(srv.URL, store, testLogger()), tokens: store}
}

func strPtr(s string) *string { return &s }

func mustDec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
