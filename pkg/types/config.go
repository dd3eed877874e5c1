package types

import "time"

// HTTPConfig holds shared HTTP settings for commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "zotero-helper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ZoteroConfig holds settings for the local read API and the connector
// import endpoint.
type ZoteroConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the local Zotero HTTP endpoint (default http://localhost:23119).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIUser is the user ID segment of the read API path. The local API
	// always serves the personal library as user 0.
	APIUser int `json:"api_user" yaml:"api_user" mapstructure:"api_user"`
}

// BridgeConfig holds settings for the debug-bridge write surface.
type BridgeConfig struct {
	// Library is the library ID the generated scripts address. The
	// personal library is 1.
	Library int `json:"library" yaml:"library" mapstructure:"library"`

	// Token is the bearer token, when set directly in config.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	// TokenFile is the path to the plugin's token file
	// (default ~/.config/zotero-bridge/token).
	TokenFile string `json:"token_file" yaml:"token_file" mapstructure:"token_file"`
}

// Config groups all settings for the CLI.
type Config struct {
	Zotero ZoteroConfig `json:"zotero" yaml:"zotero" mapstructure:",squash"`
	Bridge BridgeConfig `json:"bridge" yaml:"bridge" mapstructure:"bridge"`
}
