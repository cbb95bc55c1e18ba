package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// defaultHTTPTimeout bounds a single playlist or segment request. The poll
// loop is synchronous, so a hung transfer would stall every later cycle.
const defaultHTTPTimeout = 15 * time.Second

// Fetcher retrieves playlists and segment bodies over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using the given client. A nil client gets a
// default with defaultHTTPTimeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Fetcher{client: client}
}

// FetchPlaylist GETs the playlist endpoint and returns the body as text.
// Transport failures and non-2xx statuses are errors; the caller aborts the
// cycle and retries on the next tick.
func (f *Fetcher) FetchPlaylist(ctx context.Context, apiURL string) (string, error) {
	body, err := f.get(ctx, apiURL)
	if err != nil {
		return "", fmt.Errorf("fetch playlist: %w", err)
	}
	return string(body), nil
}

// FetchSegment GETs baseURL+ref and returns the raw segment bytes. The body
// is read in full before the caller touches the combined file, so a failed
// transfer can never leave partial bytes in it.
func (f *Fetcher) FetchSegment(ctx context.Context, baseURL, ref string) ([]byte, error) {
	body, err := f.get(ctx, baseURL+ref)
	if err != nil {
		return nil, fmt.Errorf("fetch segment %q: %w", ref, err)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// BaseURL derives the segment base from the playlist endpoint: scheme, host,
// and the directory of the path with the last component stripped, always
// ending in a slash. Segment references in the playlist are resolved
// relative to it.
func BaseURL(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("base url: %w", err)
	}
	dir := path.Dir(u.Path)
	if dir == "." {
		dir = "/"
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return u.Scheme + "://" + u.Host + dir, nil
}
