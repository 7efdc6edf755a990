package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"recruitdesk/internal/config"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// RedisAdapter stores one resource collection as a single JSON array document
// under a prefixed key: read in full on every List, written in full on every
// change. Collections are small enough that the full-document cycle stays
// cheap.
type RedisAdapter[R models.Entity] struct {
	client *redis.Client
	schema models.Schema[R]
	key    string
	logger logging.Logger

	// mu serializes in-process read-modify-write cycles; concurrent
	// processes remain last-writer-wins, as with local storage
	mu sync.Mutex
}

// NewRedisClient builds a Redis client from configuration
func NewRedisClient(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.Storage.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Storage.Redis.Password != "" {
		opts.Password = cfg.Storage.Redis.Password
	}
	opts.DB = cfg.Storage.Redis.DB
	opts.DialTimeout = cfg.Storage.Redis.Timeout
	opts.ReadTimeout = cfg.Storage.Redis.Timeout
	opts.WriteTimeout = cfg.Storage.Redis.Timeout

	return redis.NewClient(opts)
}

// NewRedisAdapter creates a Redis-backed collection for the schema
func NewRedisAdapter[R models.Entity](client *redis.Client, keyPrefix string, schema models.Schema[R]) *RedisAdapter[R] {
	return &RedisAdapter[R]{
		client: client,
		schema: schema,
		key:    fmt.Sprintf("%s:collection:%s", keyPrefix, schema.Name),
		logger: logging.GetGlobalLogger(),
	}
}

// load reads the full collection document; a missing key is an empty
// collection and a corrupt document is coerced to empty with a warning
func (r *RedisAdapter[R]) load(ctx context.Context) ([]R, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []R{}, nil
		}
		return nil, &TransportError{Op: "GET", URL: r.key, Err: err}
	}

	var items []R
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.Warn("Discarding malformed collection document", map[string]interface{}{
			"collection": r.schema.Name,
			"error":      err.Error(),
		})
		return []R{}, nil
	}
	return items, nil
}

// save writes the full collection document back
func (r *RedisAdapter[R]) save(ctx context.Context, items []R) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", r.schema.Name, err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return &TransportError{Op: "SET", URL: r.key, Err: err}
	}
	return nil
}

// List returns the stored collection narrowed by the filter
func (r *RedisAdapter[R]) List(ctx context.Context, filter Filter) ([]R, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(r.schema, items, filter), nil
}

// Get returns one record or ErrNotFound
func (r *RedisAdapter[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.GetID() == id {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Create assigns a fresh id and appends the record to the collection
func (r *RedisAdapter[R]) Create(ctx context.Context, record R) (R, error) {
	var zero R

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}

	stored, err := cloneRecord(r.schema, record)
	if err != nil {
		return zero, err
	}
	stored.SetID(utils.GenerateRecordID())
	stored.MarkCreated(time.Now().UTC())

	items = append(items, stored)
	if err := r.save(ctx, items); err != nil {
		return zero, err
	}
	return stored, nil
}

// Update fully replaces the record under id
func (r *RedisAdapter[R]) Update(ctx context.Context, id string, record R) (R, error) {
	var zero R

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}

	for i, item := range items {
		if item.GetID() != id {
			continue
		}

		stored, err := cloneRecord(r.schema, record)
		if err != nil {
			return zero, err
		}
		stored.SetID(id)
		stored.MarkUpdated(time.Now().UTC())
		items[i] = stored

		if err := r.save(ctx, items); err != nil {
			return zero, err
		}
		return stored, nil
	}
	return zero, ErrNotFound
}

// PatchFields updates only the given fields of the record under id
func (r *RedisAdapter[R]) PatchFields(ctx context.Context, id string, fields map[string]any) (R, error) {
	var zero R

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}

	for i, item := range items {
		if item.GetID() != id {
			continue
		}

		patched, err := cloneRecord(r.schema, item)
		if err != nil {
			return zero, err
		}
		if err := applyPatch(patched, fields); err != nil {
			return zero, err
		}
		patched.SetID(id)
		patched.MarkUpdated(time.Now().UTC())
		items[i] = patched

		if err := r.save(ctx, items); err != nil {
			return zero, err
		}
		return patched, nil
	}
	return zero, ErrNotFound
}

// Remove deletes the record; removing an absent id is a no-op
func (r *RedisAdapter[R]) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, item := range items {
		if item.GetID() == id {
			items = append(items[:i], items[i+1:]...)
			return r.save(ctx, items)
		}
	}
	return nil
}
