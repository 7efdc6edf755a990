// Package adapter provides the persistence layer behind every resource
// collection: one generic interface with REST, Postgres, Redis and in-memory
// drivers. Callers choose exactly one driver per deployment through
// configuration; the sync layer never sees transport details.
package adapter

import (
	"context"

	"recruitdesk/pkg/models"
)

// Adapter is the uniform persistence interface for one resource collection.
// IDs are assigned by the adapter on Create, exactly once.
type Adapter[R models.Entity] interface {
	// List fetches all records, optionally narrowed by the filter
	List(ctx context.Context, filter Filter) ([]R, error)

	// Get fetches one record; an absent id yields ErrNotFound, which is an
	// expected outcome for existence checks, not a failure
	Get(ctx context.Context, id string) (R, error)

	// Create stores a new record and returns it with its assigned id
	Create(ctx context.Context, record R) (R, error)

	// Update fully replaces the record; missing optional fields clear to
	// their zero values, so callers must send complete objects
	Update(ctx context.Context, id string, record R) (R, error)

	// PatchFields updates only the given fields, leaving siblings untouched
	PatchFields(ctx context.Context, id string, fields map[string]any) (R, error)

	// Remove deletes the record; deleting an absent id is not an error
	Remove(ctx context.Context, id string) error
}
