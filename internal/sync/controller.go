// Package sync implements the resource-sync controller: the per-view owner
// of one resource collection, kept consistent with its persistence adapter by
// refetching the whole collection after every successful write.
package sync

import (
	"context"
	"sync"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
)

// Controller owns the in-memory collection for one resource type. It is the
// sole writer of that collection: every mutation goes through the adapter and
// is followed by an unconditional full refetch, never a local patch, so
// server-computed fields can never diverge from the displayed state.
type Controller[R models.Entity] struct {
	schema  models.Schema[R]
	adapter adapter.Adapter[R]
	logger  logging.Logger

	mu    sync.RWMutex
	items []R

	onChange func([]R)
	onError  func(error)
}

// Option configures a Controller
type Option[R models.Entity] func(*Controller[R])

// WithChangeListener registers a callback invoked with the fresh collection
// after every successful refetch
func WithChangeListener[R models.Entity](fn func([]R)) Option[R] {
	return func(c *Controller[R]) { c.onChange = fn }
}

// WithErrorListener registers the user-visible notification hook for
// adapter failures
func WithErrorListener[R models.Entity](fn func(error)) Option[R] {
	return func(c *Controller[R]) { c.onError = fn }
}

// NewController creates a controller for one resource collection
func NewController[R models.Entity](schema models.Schema[R], a adapter.Adapter[R], opts ...Option[R]) *Controller[R] {
	c := &Controller[R]{
		schema:  schema,
		adapter: a,
		logger:  logging.GetGlobalLogger(),
		items:   []R{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load seeds the collection with a full fetch, replacing any previous state
// wholesale. A transport failure degrades to an empty collection and a
// warning; it never propagates as a crash.
func (c *Controller[R]) Load(ctx context.Context) error {
	items, err := c.adapter.List(ctx, adapter.Filter{})
	if err != nil {
		c.logger.Warn("Initial load failed, starting with empty collection", map[string]interface{}{
			"collection": c.schema.Name,
			"error":      err.Error(),
		})
		c.replace([]R{})
		c.notifyError(err)
		return err
	}
	c.replace(items)
	return nil
}

// refresh refetches after a successful write. A failed refetch keeps the
// previous snapshot: the write itself succeeded and the backend remains
// authoritative, so stale state plus a warning beats losing it.
func (c *Controller[R]) refresh(ctx context.Context) {
	items, err := c.adapter.List(ctx, adapter.Filter{})
	if err != nil {
		c.logger.Warn("Refetch after write failed, keeping previous snapshot", map[string]interface{}{
			"collection": c.schema.Name,
			"error":      err.Error(),
		})
		c.notifyError(err)
		return
	}
	c.replace(items)
}

func (c *Controller[R]) replace(items []R) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(items)
	}
}

func (c *Controller[R]) notifyError(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

// Items returns the current collection snapshot
func (c *Controller[R]) Items() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]R, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Search applies the pure filter projection to the current snapshot. It is
// synchronous and recomputed on every call; no debouncing, no pagination.
func (c *Controller[R]) Search(query, status string) []R {
	return adapter.Apply(c.schema, c.Items(), adapter.Filter{Query: query, Status: status})
}

// Create stores a new record, then refetches. On failure the collection is
// left untouched and the error is surfaced as a notification.
func (c *Controller[R]) Create(ctx context.Context, record R) (R, error) {
	created, err := c.adapter.Create(ctx, record)
	if err != nil {
		var zero R
		c.notifyError(err)
		return zero, err
	}
	c.refresh(ctx)
	return created, nil
}

// Update fully replaces a record, then refetches
func (c *Controller[R]) Update(ctx context.Context, id string, record R) (R, error) {
	updated, err := c.adapter.Update(ctx, id, record)
	if err != nil {
		var zero R
		c.notifyError(err)
		return zero, err
	}
	c.refresh(ctx)
	return updated, nil
}

// PatchFields updates a subset of fields, then refetches. Used by inline
// single-field edits such as status dropdowns.
func (c *Controller[R]) PatchFields(ctx context.Context, id string, fields map[string]any) (R, error) {
	patched, err := c.adapter.PatchFields(ctx, id, fields)
	if err != nil {
		var zero R
		c.notifyError(err)
		return zero, err
	}
	c.refresh(ctx)
	return patched, nil
}

// Remove deletes a record, then refetches. Deleting an already-absent id is
// not an error.
func (c *Controller[R]) Remove(ctx context.Context, id string) error {
	if err := c.adapter.Remove(ctx, id); err != nil {
		c.notifyError(err)
		return err
	}
	c.refresh(ctx)
	return nil
}
