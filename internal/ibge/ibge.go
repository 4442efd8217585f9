// Package ibge is a small client for the IBGE localidades API, which lists
// Brazilian states (UFs) and the municipalities within each state.
package ibge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ecoleta/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public localidades API root.
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

const tracerName = "ecoleta/ibge"

// maxBodyBytes caps a single response; the full municipality list of the
// largest state is well under this.
const maxBodyBytes = 8 << 20

// ErrEmptyUF is returned when a city lookup is requested without a state code.
var ErrEmptyUF = errors.New("ibge: empty UF")

// State is one record of GET /estados.
type State struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// City is one record of GET /estados/{uf}/municipios.
type City struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ibge: GET %s: unexpected status %d", e.Path, e.StatusCode)
}

// Cache stores raw response bodies keyed by request path.
// A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
}

// Client fetches states and cities.
type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithCache enables read-through caching of raw responses.
func WithCache(c Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(cl *Client) {
		if tp != nil {
			cl.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListStates returns every state in the order the service reports them.
func (c *Client) ListStates(ctx context.Context) ([]State, error) {
	ctx, span := c.tracer.Start(ctx, "ibge.ListStates")
	defer span.End()

	return fetchArray[State](ctx, c, span, "/estados", "ibge: decode states")
}

// ListCities returns the municipalities of uf in the order the service reports them.
func (c *Client) ListCities(ctx context.Context, uf string) ([]City, error) {
	ctx, span := c.tracer.Start(ctx, "ibge.ListCities",
		oteltrace.WithAttributes(attribute.String("ibge.uf", uf)))
	defer span.End()

	uf = strings.TrimSpace(uf)
	if uf == "" {
		recordError(span, ErrEmptyUF)
		return nil, ErrEmptyUF
	}
	path := "/estados/" + url.PathEscape(uf) + "/municipios"
	return fetchArray[City](ctx, c, span, path, "ibge: decode cities for "+uf)
}

// cacheKey scopes a cached body to the API root it came from.
func (c *Client) cacheKey(path string) string {
	return c.BaseURL() + path
}

// fetchArray decodes the array at path, consulting the cache first.
// Only bodies that decode cleanly are written back to the cache.
func fetchArray[T any](ctx context.Context, c *Client, span oteltrace.Span, path, decodeCtx string) ([]T, error) {
	key := c.cacheKey(path)
	if c.cache != nil {
		payload, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Printf("ibge: cache get %s: %v", key, err)
		case ok:
			rows, err := jsonutil.UnmarshalArray[T](payload, decodeCtx)
			if err == nil {
				span.SetAttributes(
					attribute.Bool("ibge.cache_hit", true),
					attribute.Int("ibge.records", len(rows)),
				)
				return rows, nil
			}
			log.Printf("ibge: cache entry %s unreadable, refetching: %v", key, err)
		}
	}

	body, err := c.get(ctx, span, path)
	if err != nil {
		return nil, err
	}
	rows, err := jsonutil.UnmarshalArray[T](body, decodeCtx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("ibge.records", len(rows)))

	if c.cache != nil {
		// A failed write only costs a refetch next time.
		if err := c.cache.Put(ctx, key, body); err != nil {
			log.Printf("ibge: cache put %s: %v", key, err)
		}
	}
	return rows, nil
}

// get performs the HTTP request and returns the raw body of a 2xx response.
func (c *Client) get(ctx context.Context, span oteltrace.Span, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("ibge: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("ibge: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{Path: path, StatusCode: resp.StatusCode}
		recordError(span, err)
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("ibge: read %s: %w", path, err)
	}
	return body, nil
}

func recordError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
