package driven

import (
	"context"
	"net/http"
)

// FetchResult is the outcome of a completed HTTP exchange. A result is
// produced whenever the server answered at all; interpreting the status
// code is the caller's concern.
type FetchResult struct {
	// StatusCode is the HTTP status returned by the server.
	StatusCode int

	// Body is the complete response body.
	Body []byte
}

// Transport performs HTTP exchanges on behalf of catalog gateways.
// Implementations own connection pooling and request timeouts. An error
// return means the exchange never completed (DNS failure, refused
// connection, cancelled context); a non-2xx answer is a successful
// fetch whose StatusCode the gateway must inspect.
type Transport interface {
	// Fetch issues a GET request against url with the given headers
	// and reads the complete body. A nil header is allowed.
	Fetch(ctx context.Context, url string, header http.Header) (FetchResult, error)
}

// TransportFunc adapts a plain function to the Transport interface,
// mirroring http.HandlerFunc. Useful for stubbing transports in tests.
type TransportFunc func(ctx context.Context, url string, header http.Header) (FetchResult, error)

// Fetch calls f.
func (f TransportFunc) Fetch(ctx context.Context, url string, header http.Header) (FetchResult, error) {
	return f(ctx, url, header)
}
