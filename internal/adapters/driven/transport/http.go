// Package transport provides the HTTP implementation of the Transport
// port. It owns the real network client; everything above it sees only
// status codes and bytes.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout bounds one catalog exchange end to end.
	DefaultTimeout = 10 * time.Second

	// userAgent identifies the CLI to the catalog.
	userAgent = "ladle-cli"

	// maxBodySize caps how much of a response is read into memory.
	// Catalog bodies run to a few hundred kilobytes; anything bigger
	// is not a catalog response.
	maxBodySize = 4 << 20
)

// Ensure HTTP implements the port.
var _ driven.Transport = (*HTTP)(nil)

// HTTP performs network exchanges through one shared connection pool.
// Safe for concurrent use.
type HTTP struct {
	client *http.Client
}

// New creates a transport with the default timeout.
func New() *HTTP {
	return NewWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewWithClient wraps an existing http.Client, for callers that need
// custom timeouts or proxies.
func NewWithClient(client *http.Client) *HTTP {
	return &HTTP{client: client}
}

// Fetch issues one GET request and reads the complete body. A non-2xx
// status comes back in the result, not as an error; the error return
// is reserved for exchanges that never completed.
func (t *HTTP) Fetch(ctx context.Context, url string, header http.Header) (driven.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return driven.FetchResult{}, fmt.Errorf("build request: %w", err)
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return driven.FetchResult{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return driven.FetchResult{}, fmt.Errorf("read body: %w", err)
	}

	return driven.FetchResult{StatusCode: resp.StatusCode, Body: body}, nil
}
