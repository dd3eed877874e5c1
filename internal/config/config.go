// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads CLI configuration with precedence env > config file > defaults.
package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/zotero-helper/pkg/types"
)

// Defaults mirror the endpoints of a stock Zotero install with the
// debug-bridge plugin.
const (
	DefaultBaseURL   = "http://localhost:23119"
	DefaultAPIUser   = 0
	DefaultLibrary   = 1
	DefaultTimeout   = 30 * time.Second
	defaultTokenFile = "~/.config/zotero-bridge/token"
)

// Load reads configuration from cfgFile (when non-empty), otherwise from
// zotero-helper.yaml in the working directory or ~/.config/zotero-helper/.
// Environment variables with the ZOTERO prefix override file values
// (e.g. ZOTERO_BASE_URL). A missing config file is not an error.
func Load(cfgFile, userAgent string) (*types.Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("api_user", DefaultAPIUser)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("user_agent", userAgent)
	v.SetDefault("bridge.library", DefaultLibrary)
	v.SetDefault("bridge.token", "")
	v.SetDefault("bridge.token_file", defaultTokenFile)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("zotero-helper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "zotero-helper"))
		}
	}

	v.SetEnvPrefix("ZOTERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Bridge.TokenFile = ExpandHome(cfg.Bridge.TokenFile)
	return &cfg, nil
}

// ExpandHome replaces a leading ~/ with the user's home directory. The
// path is returned unchanged when the home directory cannot be resolved.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// NewHTTPClient returns the shared HTTP client. Redirect following is
// the default policy, which doi.org resolution relies on.
func NewHTTPClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
