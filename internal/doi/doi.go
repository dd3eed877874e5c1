// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi validates DOIs and fetches their citation data as RIS via
// doi.org content negotiation.
package doi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/pdiddy/zotero-helper/internal/httputil"
)

// resolverBase is the DOI resolver endpoint. Declared as a var so tests
// can substitute an httptest server.
var resolverBase = "https://doi.org/"

// risAccept requests RIS through the resolver's content negotiation.
const risAccept = "application/x-research-info-systems"

// doiPattern matches DOIs: "10.1145/1234567.1234568".
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// Normalize strips common DOI prefixes (doi:, resolver URLs) and
// surrounding whitespace.
func Normalize(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "doi:"} {
		if strings.HasPrefix(strings.ToLower(doi), prefix) {
			doi = doi[len(prefix):]
			break
		}
	}
	return doi
}

// Valid reports whether the (normalized) string looks like a DOI.
func Valid(doi string) bool {
	return doiPattern.MatchString(doi)
}

// FetchRIS resolves the DOI and returns the registrant's citation data
// as RIS text. The resolver redirects to the registration agency, so the
// client must follow redirects. 429 responses are retried.
func FetchRIS(ctx context.Context, client *http.Client, doi, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolverBase+doi, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", risAccept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return "", fmt.Errorf("DOI resolver request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching DOI %s: HTTP %d", doi, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading RIS response: %w", err)
	}
	if strings.TrimSpace(string(body)) == "" {
		return "", fmt.Errorf("DOI %s resolved to an empty RIS record", doi)
	}
	return string(body), nil
}
