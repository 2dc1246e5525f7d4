package engine

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Accept headers for the two kinds of outbound request.
const (
	acceptAny    = "text/html,application/xhtml+xml,application/pdf;q=0.9,*/*;q=0.8"
	acceptBinary = "application/pdf,application/octet-stream;q=0.9,*/*;q=0.8"
)

// newFetchClient creates an HTTP client with proper settings for web scraping.
func newFetchClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// fetchOnce performs a single HTTP GET. There is no retry: a transport error or a
// non-2xx status fails with ErrFetchFailure and the body is closed.
func fetchOnce(ctx context.Context, client *http.Client, fetchURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	req.Header.Set("User-Agent", RandomUserAgent())
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailure, resp.StatusCode)
	}
	return resp, nil
}

// readResponseBody reads the response body, handling gzip decompression if needed.
// limit caps the decoded size (0 = unlimited); a larger body fails with
// ErrFetchFailure instead of being cut short.
func readResponseBody(resp *http.Response, limit int64) ([]byte, error) {
	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", ErrFetchFailure, err)
		}
		defer gz.Close()
		r = gz
	}
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailure, err)
	}
	if limit > 0 && int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrFetchFailure, limit)
	}
	return body, nil
}
