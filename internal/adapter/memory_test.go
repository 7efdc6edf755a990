package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/pkg/models"
)

func TestMemoryCreateAssignsID(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)

	created, err := m.Create(context.Background(), &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestMemoryListPreservesInsertionOrder(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := m.Create(ctx, &models.Job{Title: title, Company: "Acme"})
		require.NoError(t, err)
	}

	items, err := m.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "Second", items[1].Title)
	assert.Equal(t, "Third", items[2].Title)
}

func TestMemoryGetUnknownIDReturnsNotFound(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)

	_, err := m.Get(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestMemoryUpdateReplacesWholesale(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	created, err := m.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme", Location: "Pune"})
	require.NoError(t, err)

	updated, err := m.Update(ctx, created.ID, &models.Job{Title: "Platform Engineer", Company: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Platform Engineer", updated.Title)
	// Absent fields clear on a full replace
	assert.Equal(t, "", updated.Location)
}

func TestMemoryUpdateUnknownIDReturnsNotFound(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)

	_, err := m.Update(context.Background(), "missing", &models.Job{Title: "X", Company: "Y"})
	assert.True(t, IsNotFound(err))
}

func TestMemoryPatchPreservesSiblingFields(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	created, err := m.Create(ctx, &models.Job{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Pune",
		Skills:   []string{"Go", "SQL"},
		Status:   models.JobStatusAction,
	})
	require.NoError(t, err)

	patched, err := m.PatchFields(ctx, created.ID, map[string]any{"status": models.JobStatusHold})
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusHold, patched.Status)
	assert.Equal(t, "Backend Engineer", patched.Title)
	assert.Equal(t, "Pune", patched.Location)
	assert.Equal(t, []string{"Go", "SQL"}, patched.Skills)
}

func TestMemoryPatchCannotChangeID(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	created, err := m.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	patched, err := m.PatchFields(ctx, created.ID, map[string]any{"id": "hijacked", "title": "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Renamed", patched.Title)
}

func TestMemoryRemoveIsIdempotent(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	created, err := m.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	require.NoError(t, m.Remove(ctx, created.ID))
	require.NoError(t, m.Remove(ctx, created.ID))
	require.NoError(t, m.Remove(ctx, "never-existed"))

	items, err := m.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryReturnsClones(t *testing.T) {
	m := NewMemoryAdapter(models.JobSchema)
	ctx := context.Background()

	created, err := m.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	created.Title = "Mutated"

	stored, err := m.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", stored.Title)
}
