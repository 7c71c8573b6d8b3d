// ABOUTME: Shared helpers for command tests
// ABOUTME: Points commands at a temp config dir and an in-process mock backend

package cmd

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/server"
	serverconfig "github.com/markalston/mocha-admin/internal/server/config"
)

// useBackend resets global flag state, points the CLI at url and returns
// the temp config dir sessions are saved in.
func useBackend(t *testing.T, url string) string {
	t.Helper()
	for _, key := range []string{"MOCHA_API_URL", "MOCHA_CONFIG_DIR", "MOCHA_REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	apiURL = url
	configDir = dir
	loadedConfig = nil
	jsonOutput = false
	noPersist = false

	t.Cleanup(func() {
		apiURL = ""
		configDir = ""
		loadedConfig = nil
		jsonOutput = false
		noPersist = false
	})
	return dir
}

func backendConfig() *serverconfig.Config {
	return &serverconfig.Config{
		Port:          "0",
		TokenTTL:      3600,
		RateLimitAuth: 100,
	}
}

// startBackend runs the mock backend in-process and returns its URL.
func startBackend(t *testing.T, cfg *serverconfig.Config) string {
	t.Helper()
	if cfg == nil {
		cfg = backendConfig()
	}
	s := server.New(cfg, logger.Discard())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Close()
	})
	return ts.URL
}
