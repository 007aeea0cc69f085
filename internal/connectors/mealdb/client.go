package mealdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	wire "github.com/ladle-labs/ladle-cli/internal/normalisers/mealdb"
)

const (
	// DefaultBaseURL is the free-tier API root.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	searchPath = "/search.php"
	lookupPath = "/lookup.php"
	randomPath = "/random.php"

	// headerRequestID tags every catalog call so one dispatch can be
	// traced across verbose logs and proxies.
	headerRequestID = "X-Request-ID"
)

// envelope is the fixed response wrapper. Meals is kept raw so null
// (zero matches) can be told apart from a record list and from shapes
// that are neither.
type envelope struct {
	Meals json.RawMessage `json:"meals"`
}

// Ensure Client implements the catalog port.
var _ driven.RecipeCatalog = (*Client)(nil)

// Client is the catalog gateway. It issues requests through an
// injected Transport, decodes the envelope and hands every record to
// the normaliser. The zero value is not usable; use NewClient.
type Client struct {
	baseURL   string
	transport driven.Transport
	limiter   *rate.Limiter
}

// PremiumBaseURL returns the API root for a premium key. Premium keys
// are served from the v2 tree rather than slotting into the v1 path.
func PremiumBaseURL(key string) string {
	return "https://www.themealdb.com/api/json/v2/" + key
}

// NewClient creates a catalog client on top of transport.
// An empty baseURL selects DefaultBaseURL.
func NewClient(transport driven.Transport, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		transport: transport,
		limiter:   newLimiter(),
	}
}

// SearchByName returns every recipe whose name matches query. The
// query is URL-encoded verbatim; an empty query is valid and matches
// the whole catalog. Zero matches yields an empty, non-nil slice.
func (c *Client) SearchByName(ctx context.Context, query string) ([]domain.Recipe, error) {
	records, err := c.fetchRecords(ctx, c.baseURL+searchPath+"?s="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(records))
	for _, rec := range records {
		recipes = append(recipes, wire.Normalise(rec))
	}
	return recipes, nil
}

// LookupByID fetches one recipe by catalog identifier. The catalog
// answers an unknown ID with a null envelope, which maps to
// domain.ErrNotFound.
func (c *Client) LookupByID(ctx context.Context, id string) (*domain.Recipe, error) {
	records, err := c.fetchRecords(ctx, c.baseURL+lookupPath+"?i="+url.QueryEscape(id))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	recipe := wire.Normalise(records[0])
	return &recipe, nil
}

// Random fetches one recipe chosen by the catalog.
func (c *Client) Random(ctx context.Context) (*domain.Recipe, error) {
	records, err := c.fetchRecords(ctx, c.baseURL+randomPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("random recipe: %w", domain.ErrNotFound)
	}

	recipe := wire.Normalise(records[0])
	return &recipe, nil
}

// fetchRecords performs one catalog exchange and decodes the envelope
// into wire records. It is the only place requests leave the process.
func (c *Client) fetchRecords(ctx context.Context, rawURL string) ([]wire.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	header := http.Header{}
	header.Set("Cache-Control", "no-cache")
	header.Set("Accept", "application/json")
	header.Set(headerRequestID, uuid.NewString())

	res, err := c.transport.Fetch(ctx, rawURL, header)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{StatusCode: res.StatusCode, URL: rawURL}
	}

	var env envelope
	if err := json.Unmarshal(res.Body, &env); err != nil {
		return nil, &MalformedResponseError{URL: rawURL, Err: err}
	}
	if nullOrAbsent(env.Meals) {
		return nil, nil
	}

	var records []wire.Record
	if err := json.Unmarshal(env.Meals, &records); err != nil {
		return nil, &MalformedResponseError{URL: rawURL, Err: err}
	}
	return records, nil
}

// nullOrAbsent reports whether the envelope's meals field was JSON
// null or missing entirely. Both mean zero matches.
func nullOrAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
