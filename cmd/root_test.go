// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Verifies environment variable, config file and flag configuration

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markalston/mocha-admin/internal/config"
	"github.com/markalston/mocha-admin/internal/session"
)

func TestGetAPIURL_Default(t *testing.T) {
	useBackend(t, "")

	url := GetAPIURL()
	if url != config.DefaultAPIURL {
		t.Errorf("expected default URL %s, got %s", config.DefaultAPIURL, url)
	}
}

func TestGetAPIURL_FromEnv(t *testing.T) {
	useBackend(t, "")
	t.Setenv("MOCHA_API_URL", "http://backend.example.com/")

	url := GetAPIURL()
	if url != "http://backend.example.com" {
		t.Errorf("expected http://backend.example.com, got %s", url)
	}
}

func TestGetAPIURL_FromConfigFile(t *testing.T) {
	dir := useBackend(t, "")
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("api_url: http://file.example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	url := GetAPIURL()
	if url != "http://file.example.com" {
		t.Errorf("expected config file URL, got %s", url)
	}
}

func TestGetAPIURL_FlagOverridesEnv(t *testing.T) {
	useBackend(t, "http://flag-override.example.com/")
	t.Setenv("MOCHA_API_URL", "http://backend.example.com")

	url := GetAPIURL()
	if url != "http://flag-override.example.com" {
		t.Errorf("expected flag to override env, got %s", url)
	}
}

func TestGetConfigDir_Priority(t *testing.T) {
	useBackend(t, "")
	configDir = ""
	t.Setenv("MOCHA_CONFIG_DIR", "/tmp/mocha-env")

	if got := GetConfigDir(); got != "/tmp/mocha-env" {
		t.Errorf("expected env dir, got %s", got)
	}

	configDir = "/tmp/mocha-flag"
	if got := GetConfigDir(); got != "/tmp/mocha-flag" {
		t.Errorf("expected flag dir, got %s", got)
	}
}

func TestJSONOutput(t *testing.T) {
	useBackend(t, "")
	jsonOutput = true

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestNewStore_NoPersist(t *testing.T) {
	useBackend(t, "")

	if _, ok := newStore().(*session.FileStore); !ok {
		t.Error("expected a file store by default")
	}

	noPersist = true
	if _, ok := newStore().(*session.MemoryStore); !ok {
		t.Error("expected a memory store with --no-persist")
	}
}
