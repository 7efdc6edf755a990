package adapter

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"recruitdesk/internal/config"
	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// GormAdapter is the relational driver, one table per resource collection
type GormAdapter[R models.Entity] struct {
	db     *gorm.DB
	schema models.Schema[R]
}

// ConnectPostgres opens the configured Postgres database and migrates the
// resource tables
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Storage.Postgres.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
		&models.Interview{},
		&models.SelectedCandidate{},
		&models.JoinedCandidate{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// NewGormAdapter creates a relational collection for the schema
func NewGormAdapter[R models.Entity](db *gorm.DB, schema models.Schema[R]) *GormAdapter[R] {
	return &GormAdapter[R]{db: db, schema: schema}
}

// List returns all records in creation order, narrowed by the filter. The
// free-text filter runs in memory because the searchable text spans several
// columns per resource.
func (g *GormAdapter[R]) List(ctx context.Context, filter Filter) ([]R, error) {
	var items []R
	result := g.db.WithContext(ctx).Model(g.schema.New()).Order("created_at, id").Find(&items)
	if result.Error != nil {
		return nil, &TransportError{Op: "SELECT", URL: g.schema.Name, Err: result.Error}
	}
	return Apply(g.schema, items, filter), nil
}

// Get returns one record or ErrNotFound
func (g *GormAdapter[R]) Get(ctx context.Context, id string) (R, error) {
	record := g.schema.New()
	result := g.db.WithContext(ctx).First(record, "id = ?", id)
	if result.Error != nil {
		var zero R
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, &TransportError{Op: "SELECT", URL: g.schema.Name, Err: result.Error}
	}
	return record, nil
}

// Create assigns a fresh id and inserts the record
func (g *GormAdapter[R]) Create(ctx context.Context, record R) (R, error) {
	var zero R

	stored, err := cloneRecord(g.schema, record)
	if err != nil {
		return zero, err
	}
	stored.SetID(utils.GenerateRecordID())
	stored.MarkCreated(time.Now().UTC())

	if result := g.db.WithContext(ctx).Create(stored); result.Error != nil {
		return zero, &TransportError{Op: "INSERT", URL: g.schema.Name, Err: result.Error}
	}
	return stored, nil
}

// Update fully replaces the record under id
func (g *GormAdapter[R]) Update(ctx context.Context, id string, record R) (R, error) {
	var zero R

	if _, err := g.Get(ctx, id); err != nil {
		return zero, err
	}

	stored, err := cloneRecord(g.schema, record)
	if err != nil {
		return zero, err
	}
	stored.SetID(id)
	stored.MarkUpdated(time.Now().UTC())

	// Save writes every column, matching the full-replace contract
	if result := g.db.WithContext(ctx).Save(stored); result.Error != nil {
		return zero, &TransportError{Op: "UPDATE", URL: g.schema.Name, Err: result.Error}
	}
	return stored, nil
}

// PatchFields updates only the given fields via read-modify-write, so the
// patch semantics match the other drivers exactly
func (g *GormAdapter[R]) PatchFields(ctx context.Context, id string, fields map[string]any) (R, error) {
	var zero R

	existing, err := g.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := applyPatch(existing, fields); err != nil {
		return zero, err
	}
	existing.SetID(id)
	existing.MarkUpdated(time.Now().UTC())

	if result := g.db.WithContext(ctx).Save(existing); result.Error != nil {
		return zero, &TransportError{Op: "UPDATE", URL: g.schema.Name, Err: result.Error}
	}
	return existing, nil
}

// Remove deletes the record; removing an absent id is a no-op
func (g *GormAdapter[R]) Remove(ctx context.Context, id string) error {
	result := g.db.WithContext(ctx).Delete(g.schema.New(), "id = ?", id)
	if result.Error != nil {
		return &TransportError{Op: "DELETE", URL: g.schema.Name, Err: result.Error}
	}
	return nil
}
