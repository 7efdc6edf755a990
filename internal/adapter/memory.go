package adapter

import (
	"context"
	"sync"
	"time"

	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// MemoryAdapter is the in-process driver. It backs the "memory" storage
// driver and every adapter-facing test.
type MemoryAdapter[R models.Entity] struct {
	schema  models.Schema[R]
	mu      sync.RWMutex
	records map[string]R
	order   []string
}

// NewMemoryAdapter creates an empty in-memory collection for the schema
func NewMemoryAdapter[R models.Entity](schema models.Schema[R]) *MemoryAdapter[R] {
	return &MemoryAdapter[R]{
		schema:  schema,
		records: make(map[string]R),
	}
}

// List returns all records in creation order, narrowed by the filter
func (m *MemoryAdapter[R]) List(ctx context.Context, filter Filter) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]R, 0, len(m.order))
	for _, id := range m.order {
		clone, err := cloneRecord(m.schema, m.records[id])
		if err != nil {
			return nil, err
		}
		items = append(items, clone)
	}
	return Apply(m.schema, items, filter), nil
}

// Get returns one record or ErrNotFound
func (m *MemoryAdapter[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return zero, ErrNotFound
	}
	return cloneRecord(m.schema, record)
}

// Create assigns a fresh id and stores the record
func (m *MemoryAdapter[R]) Create(ctx context.Context, record R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	stored, err := cloneRecord(m.schema, record)
	if err != nil {
		return zero, err
	}
	stored.SetID(utils.GenerateRecordID())
	stored.MarkCreated(time.Now().UTC())

	m.mu.Lock()
	m.records[stored.GetID()] = stored
	m.order = append(m.order, stored.GetID())
	m.mu.Unlock()

	return cloneRecord(m.schema, stored)
}

// Update fully replaces the record under id. Fields absent from the payload
// clear to their zero values, so callers send complete objects.
func (m *MemoryAdapter[R]) Update(ctx context.Context, id string, record R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return zero, ErrNotFound
	}

	stored, err := cloneRecord(m.schema, record)
	if err != nil {
		return zero, err
	}
	stored.SetID(id)
	stored.MarkUpdated(time.Now().UTC())
	m.records[id] = stored

	return cloneRecord(m.schema, stored)
}

// PatchFields updates only the given fields, leaving siblings untouched
func (m *MemoryAdapter[R]) PatchFields(ctx context.Context, id string, fields map[string]any) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[id]
	if !ok {
		return zero, ErrNotFound
	}

	patched, err := cloneRecord(m.schema, existing)
	if err != nil {
		return zero, err
	}
	if err := applyPatch(patched, fields); err != nil {
		return zero, err
	}
	patched.SetID(id)
	patched.MarkUpdated(time.Now().UTC())
	m.records[id] = patched

	return cloneRecord(m.schema, patched)
}

// Remove deletes the record; removing an absent id is a no-op
func (m *MemoryAdapter[R]) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return nil
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
