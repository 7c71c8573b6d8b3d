// ABOUTME: Remembers wallet addresses that signed in successfully
// ABOUTME: Stored as recent.json in the config dir and cycled on the login screen

package recentwallets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MaxRecentWallets is the maximum number of wallets to keep
const MaxRecentWallets = 5

// FileName is the JSON file kept inside the config directory.
const FileName = "recent.json"

// RecentWallets manages the list of recently used wallet addresses. It is
// safe for concurrent use; the login screen records wallets from a command.
type RecentWallets struct {
	mu        sync.Mutex
	configDir string
	wallets   []string
}

type recentData struct {
	Wallets []string `json:"wallets"`
}

// New creates a new RecentWallets manager with the given config directory.
// An empty dir keeps the list in memory only.
func New(configDir string) *RecentWallets {
	return &RecentWallets{configDir: configDir}
}

func (rw *RecentWallets) configFile() string {
	return filepath.Join(rw.configDir, FileName)
}

// Load reads the list from disk. Blank entries and duplicates are dropped.
func (rw *RecentWallets) Load() ([]string, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.load()
}

func (rw *RecentWallets) load() ([]string, error) {
	if rw.configDir == "" {
		if rw.wallets == nil {
			rw.wallets = []string{}
		}
		return rw.wallets, nil
	}

	data, err := os.ReadFile(rw.configFile())
	if os.IsNotExist(err) {
		rw.wallets = []string{}
		return rw.wallets, nil
	}
	if err != nil {
		return nil, err
	}

	var recent recentData
	if err := json.Unmarshal(data, &recent); err != nil {
		// Invalid JSON, start fresh
		rw.wallets = []string{}
		return rw.wallets, nil
	}

	rw.wallets = dedupe(recent.Wallets)
	return rw.wallets, nil
}

// Save writes the list to disk
func (rw *RecentWallets) Save(wallets []string) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.save(wallets)
}

func (rw *RecentWallets) save(wallets []string) error {
	wallets = dedupe(wallets)
	if len(wallets) > MaxRecentWallets {
		wallets = wallets[:MaxRecentWallets]
	}
	rw.wallets = wallets

	if rw.configDir == "" {
		return nil
	}
	if err := os.MkdirAll(rw.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(recentData{Wallets: wallets}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(rw.configFile(), data, 0600)
}

// Add puts a wallet at the front of the list (moves it if already present)
func (rw *RecentWallets) Add(wallet string) error {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return nil
	}
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.wallets == nil {
		if _, err := rw.load(); err != nil {
			rw.wallets = []string{}
		}
	}
	return rw.save(append([]string{wallet}, rw.wallets...))
}

// List returns a copy of the current list of recent wallets
func (rw *RecentWallets) List() []string {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.wallets == nil {
		rw.load()
	}
	return append([]string(nil), rw.wallets...)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
