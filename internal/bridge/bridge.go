// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bridge executes JavaScript inside the running Zotero process
// through the debug-bridge plugin. All writes go through this surface;
// the scripts defer every piece of business logic to the application.
//
// The plugin answers with a JSON envelope [status, contentType, result].
// Status 201 means the script ran and result is its return value; any
// other status is an error whose message is result. Bodies that are not
// a JSON array are passed through verbatim.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/zotero-helper/internal/httputil"
	"github.com/pdiddy/zotero-helper/pkg/types"
)

// executePath is the plugin's script execution endpoint.
const executePath = "/debug-bridge/execute"

// scriptOKStatus is the envelope status for a successfully executed script.
const scriptOKStatus = 201

// Client posts scripts to the debug bridge.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Token     string
	UserAgent string

	// Library is the library ID the canned scripts address.
	Library int
}

// New returns a bridge client.
func New(httpClient *http.Client, zcfg types.ZoteroConfig, bcfg types.BridgeConfig, token string) *Client {
	return &Client{
		HTTP:      httpClient,
		BaseURL:   strings.TrimSuffix(zcfg.BaseURL, "/"),
		Token:     token,
		UserAgent: zcfg.UserAgent,
		Library:   bcfg.Library,
	}
}

// Execute runs a script and returns its result as text. The result of a
// script returning a JSON-encoded string is that string; other envelope
// results and non-envelope bodies are returned as raw text.
func (c *Client) Execute(ctx context.Context, script string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+executePath, strings.NewReader(script))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return "", fmt.Errorf("bridge request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading bridge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("bridge returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseEnvelope(body)
}

// parseEnvelope unpacks the [status, contentType, result] array. Bodies
// that are not a JSON array come back unchanged.
func parseEnvelope(body []byte) (string, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil || len(parts) < 3 {
		return string(body), nil
	}

	var status int
	if err := json.Unmarshal(parts[0], &status); err != nil {
		return string(body), nil
	}

	result := rawToText(parts[2])
	if status != scriptOKStatus {
		return "", fmt.Errorf("script failed (status %d): %s", status, result)
	}
	return result, nil
}

// rawToText unquotes a JSON string result; anything else is kept as its
// JSON text.
func rawToText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// KeyStatus is one entry of a script's per-key status report
// (e.g. trashed, added, removed, not_found).
type KeyStatus struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// scriptError is the {"error": "..."} object canned scripts return when
// a lookup fails.
type scriptError struct {
	Error string `json:"error"`
}

// RunStatuses executes a script whose return value is a JSON array of
// per-key statuses, or an error object when a lookup failed.
func (c *Client) RunStatuses(ctx context.Context, script string) ([]KeyStatus, error) {
	result, err := c.Execute(ctx, script)
	if err != nil {
		return nil, err
	}

	var se scriptError
	if err := json.Unmarshal([]byte(result), &se); err == nil && se.Error != "" {
		return nil, fmt.Errorf("%s", se.Error)
	}

	var statuses []KeyStatus
	if err := json.Unmarshal([]byte(result), &statuses); err != nil {
		return nil, fmt.Errorf("unexpected script result %q: %w", result, err)
	}
	return statuses, nil
}

// RunObject executes a script whose return value is a JSON object and
// decodes it into out. Error objects become errors.
func (c *Client) RunObject(ctx context.Context, script string, out any) error {
	result, err := c.Execute(ctx, script)
	if err != nil {
		return err
	}

	var se scriptError
	if err := json.Unmarshal([]byte(result), &se); err == nil && se.Error != "" {
		return fmt.Errorf("%s", se.Error)
	}

	if err := json.Unmarshal([]byte(result), out); err != nil {
		return fmt.Errorf("unexpected script result %q: %w", result, err)
	}
	return nil
}
