// Package catalog resolves application IDs to display names, first through
// a static table of known compatibility runtimes and otherwise through the
// Steam store's appdetails endpoint.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// DefaultBaseURL is the store endpoint queried for application details.
const DefaultBaseURL = "https://store.steampowered.com"

// Result is a resolved application name.
type Result struct {
	// Success mirrors the store response's success field; table hits are
	// always successful.
	Success bool

	// Name is the display name. When the store reports success=false it
	// is "Unknown Application"; when the name field is missing it is
	// "Unknown".
	Name string

	// FromTable is true when the name came from the known-runtime table
	// without a network call.
	FromTable bool
}

// Client looks up application names. The zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	runtimes   map[uint32]string
}

// New creates a catalog Client. A nil httpClient falls back to
// http.DefaultClient (no timeout override beyond the transport's default).
// Extra runtime names are merged over the builtin table and win on conflict.
func New(httpClient *http.Client, baseURL string, extraRuntimes map[uint32]string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	runtimes := KnownRuntimes()
	for id, name := range extraRuntimes {
		runtimes[id] = name
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		runtimes:   runtimes,
	}
}

// RuntimeName returns the known-runtime display name for the given
// application ID, if the table has one.
func (c *Client) RuntimeName(appID uint32) (string, bool) {
	name, ok := c.runtimes[appID]
	return name, ok
}

// Runtimes returns a copy of the client's runtime table, builtin entries
// merged with any configured extras.
func (c *Client) Runtimes() map[uint32]string {
	runtimes := make(map[uint32]string, len(c.runtimes))
	for id, name := range c.runtimes {
		runtimes[id] = name
	}
	return runtimes
}

// Lookup resolves the display name for an application ID.
//
// Known runtimes resolve from the table without touching the network.
// Otherwise a single GET is issued against the appdetails endpoint; a
// transport failure, an unparseable body, or a response missing the ID key
// is returned as an error, meaning the name could not be determined at
// all. A well-formed response with success=false is not an error: it
// resolves to "Unknown Application".
func (c *Client) Lookup(ctx context.Context, appID uint32) (Result, error) {
	if name, ok := c.runtimes[appID]; ok {
		return Result{Success: true, Name: name, FromTable: true}, nil
	}

	id := strconv.FormatUint(uint64(appID), 10)
	url := fmt.Sprintf("%s/api/appdetails?appids=%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request for app %s: %w", id, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch details for app %s: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response for app %s: %w", id, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return Result{}, fmt.Errorf("failed to parse response for app %s: %w", id, err)
	}

	raw, ok := doc[id]
	if !ok {
		return Result{}, fmt.Errorf("no data for app %s in response", id)
	}

	// A present but non-object value degrades to success=false below.
	appData, _ := raw.(map[string]any)
	success, _ := appData["success"].(bool)
	if !success {
		return Result{Success: false, Name: "Unknown Application"}, nil
	}

	name := "Unknown"
	if data, ok := appData["data"].(map[string]any); ok {
		if s, ok := data["name"].(string); ok {
			name = s
		}
	}

	return Result{Success: true, Name: name}, nil
}
