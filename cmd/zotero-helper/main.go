// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zotero-helper CLI.
// Read commands talk to the local API; write commands go through the
// debug-bridge plugin. See docs/ARCHITECTURE.md.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-helper/internal/bridge"
	"github.com/pdiddy/zotero-helper/internal/config"
	"github.com/pdiddy/zotero-helper/internal/secrets"
	"github.com/pdiddy/zotero-helper/internal/zotero"
	"github.com/pdiddy/zotero-helper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	cfg     *types.Config
)

// rootCmd is the base command for the zotero-helper CLI.
var rootCmd = &cobra.Command{
	Use:   "zotero-helper",
	Short: "CLI helper for a locally running Zotero",
	Long: `zotero-helper translates subcommands into HTTP calls against a locally
running Zotero desktop application.

Read commands (collections list, items search, items get) use the local
REST API. Write commands (collections create/delete/add/remove, items
trash/set-field/tag, execute) run JavaScript inside Zotero through the
debug-bridge plugin and need a bearer token: set ZOTERO_BRIDGE_TOKEN or
create ~/.config/zotero-bridge/token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotenv(); err != nil {
			return err
		}
		c, err := config.Load(cfgFile, "zotero-helper/"+version)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./zotero-helper.yaml or ~/.config/zotero-helper/zotero-helper.yaml)")
}

// httpClient returns the shared HTTP client for the current config.
func httpClient() *http.Client {
	return config.NewHTTPClient(cfg.Zotero.HTTPConfig)
}

// newAPIClient returns a client for the read API and connector endpoint.
func newAPIClient() *zotero.Client {
	return zotero.New(httpClient(), cfg.Zotero)
}

// newBridgeClient resolves the bearer token and returns a debug-bridge
// client. Fails when no token can be found.
func newBridgeClient() (*bridge.Client, error) {
	token, err := secrets.BridgeToken(cfg.Bridge)
	if err != nil {
		return nil, err
	}
	return bridge.New(httpClient(), cfg.Zotero, cfg.Bridge, token), nil
}

// printKeyStatuses writes one "  KEY: status" line per entry.
func printKeyStatuses(statuses []bridge.KeyStatus) {
	for _, s := range statuses {
		fmt.Printf("  %s: %s\n", s.Key, s.Status)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
