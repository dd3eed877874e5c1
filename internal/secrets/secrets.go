// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the debug-bridge bearer token.
//
// Resolution order: the ZOTERO_BRIDGE_TOKEN environment variable, a token
// set directly in configuration, then the plugin's token file
// (~/.config/zotero-bridge/token by default). A .env file in the working
// directory is loaded first so development setups can keep the token there.
package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pdiddy/zotero-helper/pkg/types"
)

// EnvToken is the environment variable holding the bridge token.
const EnvToken = "ZOTERO_BRIDGE_TOKEN"

// LoadDotenv loads ./.env into the process environment. A missing file is
// not an error; values already set in the environment win.
func LoadDotenv() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// BridgeToken returns the bearer token for the debug bridge, or an error
// naming every source that was tried. Read-only commands never call this.
func BridgeToken(cfg types.BridgeConfig) (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(cfg.Token); v != "" {
		return v, nil
	}

	data, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no debug-bridge token: set %s or create %s", EnvToken, cfg.TokenFile)
		}
		return "", fmt.Errorf("reading token file %s: %w", cfg.TokenFile, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", cfg.TokenFile)
	}
	return token, nil
}
