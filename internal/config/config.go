// ABOUTME: CLI configuration loaded from config.yaml and MOCHA_* environment variables.
// ABOUTME: Priority is flag > env > file > default; flags are applied by the cmd package.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. MOCHA_API_URL.
	EnvPrefix = "MOCHA_"
	// FileName is the config file looked up inside the config directory.
	FileName = "config.yaml"
	// DefaultAPIURL is used when nothing else sets api_url.
	DefaultAPIURL = "http://localhost:8080"
	appDirName    = "mocha"
)

// Config holds the resolved CLI settings.
type Config struct {
	APIURL         string `koanf:"api_url"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format"`
	NerdFonts      string `koanf:"nerd_fonts"`
	RequestTimeout int    `koanf:"request_timeout"` // seconds
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

func defaults() map[string]any {
	return map[string]any{
		"api_url":         DefaultAPIURL,
		"log_level":       "info",
		"log_format":      "text",
		"nerd_fonts":      "",
		"request_timeout": 30,
	}
}

// mapProvider feeds a plain map to koanf.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

// Load reads defaults, then dir/config.yaml if present, then MOCHA_* env vars.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if dir != "" {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	// MOCHA_API_URL -> api_url
	envTransformer := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	return &cfg, nil
}

// DefaultDir returns the default config directory under XDG_CONFIG_HOME or ~/.config
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDirName)
}
