package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"recruitdesk/internal/config"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
)

// Client is the shared HTTP transport behind every REST-driven resource
// adapter: it owns base-URL discovery, the request timeout and the optional
// outbound rate limiter. The probe result is cached for the client's
// lifetime, never across restarts.
type Client struct {
	httpClient   *http.Client
	bases        []string
	probeTimeout time.Duration
	limiter      *rate.Limiter
	logger       logging.Logger

	mu   sync.Mutex
	base string
}

// NewClient builds the shared REST transport from configuration. The
// configured base URL override is probed first, then the fallback candidates
// in order.
func NewClient(cfg *config.Config) *Client {
	bases := make([]string, 0, len(cfg.Client.ProbeBases)+1)
	if cfg.Client.BaseURL != "" {
		bases = append(bases, cfg.Client.BaseURL)
	}
	bases = append(bases, cfg.Client.ProbeBases...)

	var limiter *rate.Limiter
	if cfg.Client.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Client.RateLimit), cfg.Client.RateLimit)
	}

	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Client.RequestTimeout},
		bases:        bases,
		probeTimeout: cfg.Client.ProbeTimeout,
		limiter:      limiter,
		logger:       logging.GetGlobalLogger(),
	}
}

// Base returns the discovered backend base URL, probing on first use
func (c *Client) Base(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.base != "" {
		return c.base, nil
	}

	base, err := DiscoverBase(ctx, c.httpClient, c.bases, c.probeTimeout)
	if err != nil {
		return "", err
	}

	c.logger.Info("Adopted backend base URL", map[string]interface{}{"base": base})
	c.base = base
	return base, nil
}

// do issues one JSON request against the discovered base and decodes the
// response into out when provided
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	base, err := c.Base(ctx)
	if err != nil {
		return err
	}
	requestURL := base + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: method, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: method, URL: requestURL, Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: method, URL: requestURL, Status: resp.StatusCode}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unexpected response shape from %s: %w", requestURL, err)
		}
	}
	return nil
}

// RESTAdapter drives one resource collection over the HTTP contract
type RESTAdapter[R models.Entity] struct {
	client *Client
	schema models.Schema[R]
	logger logging.Logger
}

// NewRESTAdapter creates a REST-backed collection for the schema, sharing
// the given transport
func NewRESTAdapter[R models.Entity](client *Client, schema models.Schema[R]) *RESTAdapter[R] {
	return &RESTAdapter[R]{
		client: client,
		schema: schema,
		logger: logging.GetGlobalLogger(),
	}
}

func (a *RESTAdapter[R]) collectionPath() string {
	return "/api/" + a.schema.Name
}

func (a *RESTAdapter[R]) recordPath(id string) string {
	return a.collectionPath() + "/" + url.PathEscape(id)
}

// List fetches the collection, tolerating both a bare array and an
// {items: [...]} wrapper. A response of neither shape is coerced to an empty
// collection with a warning rather than propagated.
func (a *RESTAdapter[R]) List(ctx context.Context, filter Filter) ([]R, error) {
	path := a.collectionPath()
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.Status != "" && filter.Status != models.StatusAll {
		query.Set("status", filter.Status)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var raw json.RawMessage
	if err := a.client.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return a.decodeList(raw), nil
}

// decodeList normalizes the two wire shapes of a collection response
func (a *RESTAdapter[R]) decodeList(raw json.RawMessage) []R {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []R{}
	}

	if trimmed[0] == '[' {
		var items []R
		if err := json.Unmarshal(trimmed, &items); err != nil {
			a.warnShape(err)
			return []R{}
		}
		return items
	}

	var wrapped models.ListResponse[R]
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		a.warnShape(err)
		return []R{}
	}
	if wrapped.Items == nil {
		return []R{}
	}
	return wrapped.Items
}

func (a *RESTAdapter[R]) warnShape(err error) {
	a.logger.Warn("Discarding list response of unexpected shape", map[string]interface{}{
		"collection": a.schema.Name,
		"error":      err.Error(),
	})
}

// Get fetches one record; a 404 maps to ErrNotFound
func (a *RESTAdapter[R]) Get(ctx context.Context, id string) (R, error) {
	record := a.schema.New()
	if err := a.client.do(ctx, http.MethodGet, a.recordPath(id), nil, record); err != nil {
		var zero R
		return zero, err
	}
	return record, nil
}

// Create posts the record and returns the server-assigned copy
func (a *RESTAdapter[R]) Create(ctx context.Context, record R) (R, error) {
	created := a.schema.New()
	if err := a.client.do(ctx, http.MethodPost, a.collectionPath(), record, created); err != nil {
		var zero R
		return zero, err
	}
	return created, nil
}

// Update fully replaces the record under id
func (a *RESTAdapter[R]) Update(ctx context.Context, id string, record R) (R, error) {
	updated := a.schema.New()
	if err := a.client.do(ctx, http.MethodPut, a.recordPath(id), record, updated); err != nil {
		var zero R
		return zero, err
	}
	return updated, nil
}

// PatchFields updates a subset of fields. A lone status change goes through
// the dedicated status route used by inline dropdown edits.
func (a *RESTAdapter[R]) PatchFields(ctx context.Context, id string, fields map[string]any) (R, error) {
	path := a.recordPath(id)
	if status, ok := fields[a.schema.StatusKey()]; ok && len(fields) == 1 {
		path += "/status"
		fields = map[string]any{"status": status}
	}

	patched := a.schema.New()
	if err := a.client.do(ctx, http.MethodPatch, path, fields, patched); err != nil {
		var zero R
		return zero, err
	}
	return patched, nil
}

// Remove deletes the record; a 404 means it was already gone, which is fine
func (a *RESTAdapter[R]) Remove(ctx context.Context, id string) error {
	err := a.client.do(ctx, http.MethodDelete, a.recordPath(id), nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}
