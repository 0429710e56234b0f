package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yebox/model"
)

// CatalogClient fetches the album catalog from a Ye-box server and keeps a
// transient local copy for rendering. The server stays the source of truth;
// the copy is replaced wholesale on every Refresh.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	albums     []*model.Album
}

// NewCatalogClient creates a client for the given server base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Refresh fetches the full catalog and replaces the local copy.
func (c *CatalogClient) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/albums", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch albums: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from server", resp.StatusCode)
	}

	var albums []*model.Album
	if err := json.NewDecoder(resp.Body).Decode(&albums); err != nil {
		return fmt.Errorf("failed to decode albums: %w", err)
	}

	c.albums = albums
	return nil
}

// Albums returns the local copy of the catalog.
func (c *CatalogClient) Albums() []*model.Album {
	return c.albums
}

// Render writes one card per album: name, upload date and the track list in
// catalog order. Every call rebuilds the whole listing.
func (c *CatalogClient) Render(w io.Writer) {
	if len(c.albums) == 0 {
		fmt.Fprintln(w, "No albums in the library.")
		return
	}

	for i, album := range c.albums {
		fmt.Fprintf(w, "[%d] %s (%d tracks, uploaded %s)\n",
			i+1, album.Name, len(album.Tracks), album.UploadDate.Format("2006-01-02"))
		for j, track := range album.Tracks {
			fmt.Fprintf(w, "    %d. %s\n", j+1, track.Name)
		}
	}
}
