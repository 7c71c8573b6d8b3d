// ABOUTME: Persistent session storage: token plus serialized user record.
// ABOUTME: File-backed store for real runs, in-memory store for tests and --no-persist.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/markalston/mocha-admin/internal/models"
)

// Stable entry names. They double as file names in FileStore.
const (
	TokenKey = "authToken"
	UserKey  = "authUser"
)

// Snapshot is a persisted session.
type Snapshot struct {
	Token string
	User  models.User
}

// Store persists a session across runs.
//
// Load reports ok=false when either entry is missing, empty or malformed;
// malformed data is never an error. The error return is reserved for
// unexpected I/O failures.
type Store interface {
	Save(token string, user models.User) error
	Load() (Snapshot, bool, error)
	Clear() error
}

// decodeSnapshot applies the shared well-formedness rules to raw entries.
func decodeSnapshot(token, userJSON []byte) (Snapshot, bool) {
	tok := string(token)
	if strings.TrimSpace(tok) == "" || len(userJSON) == 0 {
		return Snapshot{}, false
	}
	var u models.User
	if err := json.Unmarshal(userJSON, &u); err != nil {
		return Snapshot{}, false
	}
	if err := u.Validate(); err != nil {
		return Snapshot{}, false
	}
	return Snapshot{Token: tok, User: u}, true
}

// FileStore keeps each entry in its own 0600 file inside dir.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory holding the session files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Save writes both entries. If either write fails both are removed.
func (s *FileStore) Save(token string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if err := writeFileAtomic(s.path(TokenKey), []byte(token)); err != nil {
		_ = s.Clear()
		return fmt.Errorf("save %s: %w", TokenKey, err)
	}
	if err := writeFileAtomic(s.path(UserKey), data); err != nil {
		_ = s.Clear()
		return fmt.Errorf("save %s: %w", UserKey, err)
	}
	return nil
}

// Load reads both entries.
func (s *FileStore) Load() (Snapshot, bool, error) {
	token, err := readEntry(s.path(TokenKey))
	if err != nil {
		return Snapshot{}, false, err
	}
	userJSON, err := readEntry(s.path(UserKey))
	if err != nil {
		return Snapshot{}, false, err
	}
	snap, ok := decodeSnapshot(token, userJSON)
	return snap, ok, nil
}

// Clear removes both entries. Missing files are not an error.
func (s *FileStore) Clear() error {
	var errs []error
	for _, key := range []string{TokenKey, UserKey} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// readEntry returns nil data for a missing file.
func readEntry(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// MemoryStore keeps the entries in memory. Sessions do not survive the process.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Save(token string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[TokenKey] = []byte(token)
	s.entries[UserKey] = data
	return nil
}

func (s *MemoryStore) Load() (Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := decodeSnapshot(s.entries[TokenKey], s.entries[UserKey])
	return snap, ok, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, TokenKey)
	delete(s.entries, UserKey)
	return nil
}

// Set writes a raw entry. Tests use it to seed malformed or partial data.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = []byte(value)
}

// Len reports how many entries are present.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
