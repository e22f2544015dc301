package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds a remote catalog fetch.
const DefaultFetchTimeout = 15 * time.Second

// Load reads the catalog from source, which is either a local file path or
// an http(s) URL. The catalog is fetched once; there is no retry.
//
// On any failure Load returns an empty (non-nil) catalog together with the
// error, so callers can log the problem and keep rendering.
func Load(ctx context.Context, source string) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	if isRemote(source) {
		c, err = fetch(ctx, source)
	} else {
		c, err = readFile(source)
	}
	if err != nil {
		return Empty(), err
	}
	return c, nil
}

// Decode parses a projects document.
func Decode(r io.Reader) (*Catalog, error) {
	var projects []Project
	if err := json.NewDecoder(r).Decode(&projects); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	return New(projects), nil
}

// WriteFile writes the catalog back out as a projects document.
func (c *Catalog) WriteFile(path string) error {
	projects := c.Projects()
	if projects == nil {
		projects = []Project{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling projects: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func fetch(ctx context.Context, url string) (*Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog %s: unexpected status %s", url, resp.Status)
	}
	return Decode(resp.Body)
}
