// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package zotero is a client for the desktop application's local HTTP
// surface: the read-only REST-like API under /api/users/{user} and the
// connector import endpoint. Writes go through the debug bridge instead
// (see internal/bridge).
package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/zotero-helper/pkg/types"
)

// risContentType is the MIME type the connector endpoint expects for RIS
// payloads.
const risContentType = "application/x-research-info-systems"

// Client talks to a locally running Zotero instance.
type Client struct {
	HTTP *http.Client
	Cfg  types.ZoteroConfig
}

// New returns a client for the configured local instance.
func New(httpClient *http.Client, cfg types.ZoteroConfig) *Client {
	return &Client{HTTP: httpClient, Cfg: cfg}
}

// apiURL joins a path under the read API prefix for the configured user.
func (c *Client) apiURL(path string) string {
	return fmt.Sprintf("%s/api/users/%d%s", strings.TrimSuffix(c.Cfg.BaseURL, "/"), c.Cfg.APIUser, path)
}

// get fetches an API path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL(path), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("local API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("local API %s returned HTTP %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing local API response: %w", err)
	}
	return nil
}

// Collections returns every collection in the library.
func (c *Client) Collections(ctx context.Context) ([]types.Collection, error) {
	var cols []types.Collection
	if err := c.get(ctx, "/collections", &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// SearchItems runs a quick search over the library.
func (c *Client) SearchItems(ctx context.Context, query string) ([]types.Item, error) {
	var items []types.Item
	if err := c.get(ctx, "/items?q="+url.QueryEscape(query), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CollectionItems returns the items in one collection.
func (c *Client) CollectionItems(ctx context.Context, key string) ([]types.Item, error) {
	var items []types.Item
	if err := c.get(ctx, "/collections/"+url.PathEscape(key)+"/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Item returns a single item's data object as raw JSON, preserving every
// field the API sent. Responses without a data envelope are returned whole.
func (c *Client) Item(ctx context.Context, key string) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	var whole json.RawMessage
	if err := c.get(ctx, "/items/"+url.PathEscape(key), &whole); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(whole, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data, nil
	}
	return whole, nil
}

// ImportRIS posts RIS text to the connector import endpoint and returns
// the response status code and body. The connector translates the records
// and creates the items itself; any status it reports is passed through.
func (c *Client) ImportRIS(ctx context.Context, ris string) (int, string, error) {
	importURL := strings.TrimSuffix(c.Cfg.BaseURL, "/") + "/connector/import"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, importURL, strings.NewReader(ris))
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", risContentType)
	req.Header.Set("User-Agent", c.Cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("connector import request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("reading connector response: %w", err)
	}
	return resp.StatusCode, string(body), nil
}
