package token

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")

	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if store.LoggedIn() {
		t.Fatal("fresh store should start logged out")
	}

	pair := Pair{AccessToken: "access", RefreshToken: "refresh"}
	if err := store.Set(pair); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Tokens() != pair {
		t.Fatalf("reloaded pair = %+v, want %+v", reloaded.Tokens(), pair)
	}
}

func TestCorruptFileStartsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if store.LoggedIn() {
		t.Fatal("corrupt token file must not produce a session")
	}
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(Pair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.LoggedIn() {
		t.Fatal("clear should drop the pair")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("clear should remove the file")
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
}
