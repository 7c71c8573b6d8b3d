// ABOUTME: Tests for the file and memory session stores
// ABOUTME: Covers round trips, malformed entries, partial state and idempotent clear

package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markalston/mocha-admin/internal/models"
)

func testUser() models.User {
	return models.User{
		WalletAddress: "0xABC123",
		CreatedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mocha")
	store := NewFileStore(dir)

	if err := store.Save("t1", testUser()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a persisted session")
	}
	if snap.Token != "t1" {
		t.Errorf("token = %q, want t1", snap.Token)
	}
	if !snap.User.CreatedAt.Equal(testUser().CreatedAt) || snap.User.WalletAddress != "0xABC123" {
		t.Errorf("user = %+v, want %+v", snap.User, testUser())
	}

	info, err := os.Stat(filepath.Join(dir, TokenKey))
	if err != nil {
		t.Fatalf("token file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

func TestFileStore_TokenStoredVerbatim(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := store.Save("abc.def.ghi", testUser()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, TokenKey))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "abc.def.ghi" {
		t.Errorf("token file = %q", data)
	}
}

func TestFileStore_LoadAbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token *string
		user  *string
	}{
		{"empty dir", nil, nil},
		{"token only", strPtr("t1"), nil},
		{"user only", nil, strPtr(`{"wallet_address":"0x1","created_at":"2024-01-15T00:00:00Z"}`)},
		{"malformed user", strPtr("t1"), strPtr(`{not json`)},
		{"user missing wallet", strPtr("t1"), strPtr(`{"created_at":"2024-01-15T00:00:00Z"}`)},
		{"blank token", strPtr("   "), strPtr(`{"wallet_address":"0x1","created_at":"2024-01-15T00:00:00Z"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.token != nil {
				os.WriteFile(filepath.Join(dir, TokenKey), []byte(*tt.token), 0600)
			}
			if tt.user != nil {
				os.WriteFile(filepath.Join(dir, UserKey), []byte(*tt.user), 0600)
			}

			_, ok, err := NewFileStore(dir).Load()
			if err != nil {
				t.Fatalf("malformed data must not be an error, got %v", err)
			}
			if ok {
				t.Error("expected no session")
			}
		})
	}
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := store.Save("t1", testUser()); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("first Clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	for _, key := range []string{TokenKey, UserKey} {
		if _, err := os.Stat(filepath.Join(dir, key)); !os.IsNotExist(err) {
			t.Errorf("%s should be removed, stat err = %v", key, err)
		}
	}
}

func TestFileStore_SaveFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the user file makes the rename fail.
	if err := os.Mkdir(filepath.Join(dir, UserKey), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, UserKey, "keep"), nil, 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(dir)
	if err := store.Save("t1", testUser()); err == nil {
		t.Fatal("expected Save to fail")
	}
	if _, err := os.Stat(filepath.Join(dir, TokenKey)); !os.IsNotExist(err) {
		t.Error("token must be removed after a failed save")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if _, ok, _ := store.Load(); ok {
		t.Fatal("new store should be empty")
	}
	if err := store.Save("t1", testUser()); err != nil {
		t.Fatal(err)
	}
	snap, ok, _ := store.Load()
	if !ok || snap.Token != "t1" {
		t.Fatalf("unexpected snapshot %+v ok=%v", snap, ok)
	}
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", store.Len())
	}
}

func strPtr(s string) *string { return &s }
