package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/adapter"
	"recruitdesk/pkg/models"
)

var errBackendDown = errors.New("backend down")

// flakyAdapter wraps the in-memory driver with switchable failures
type flakyAdapter struct {
	*adapter.MemoryAdapter[*models.Job]
	failList  bool
	failWrite bool
}

func (f *flakyAdapter) List(ctx context.Context, filter adapter.Filter) ([]*models.Job, error) {
	if f.failList {
		return nil, errBackendDown
	}
	return f.MemoryAdapter.List(ctx, filter)
}

func (f *flakyAdapter) Create(ctx context.Context, record *models.Job) (*models.Job, error) {
	if f.failWrite {
		return nil, errBackendDown
	}
	return f.MemoryAdapter.Create(ctx, record)
}

func newJobController(opts ...Option[*models.Job]) (*Controller[*models.Job], *flakyAdapter) {
	backend := &flakyAdapter{MemoryAdapter: adapter.NewMemoryAdapter(models.JobSchema)}
	return NewController(models.JobSchema, backend, opts...), backend
}

func TestLoadSeedsSnapshot(t *testing.T) {
	c, backend := newJobController()
	ctx := context.Background()

	_, err := backend.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	require.NoError(t, c.Load(ctx))
	assert.Len(t, c.Items(), 1)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	var notified error
	c, backend := newJobController(WithErrorListener[*models.Job](func(err error) { notified = err }))
	backend.failList = true

	err := c.Load(context.Background())
	assert.ErrorIs(t, err, errBackendDown)
	assert.Empty(t, c.Items())
	assert.ErrorIs(t, notified, errBackendDown)
}

func TestCreateRefetchesCollection(t *testing.T) {
	var changes int
	c, _ := newJobController(WithChangeListener[*models.Job](func([]*models.Job) { changes++ }))
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	created, err := c.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	// The snapshot holds the refetched record, server-assigned fields included
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, 2, changes)
}

func TestWriteFailureLeavesSnapshotUntouched(t *testing.T) {
	var notified error
	c, backend := newJobController(WithErrorListener[*models.Job](func(err error) { notified = err }))
	ctx := context.Background()

	_, err := c.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)
	require.Len(t, c.Items(), 1)

	backend.failWrite = true
	_, err = c.Create(ctx, &models.Job{Title: "QA Engineer", Company: "Globex"})
	assert.ErrorIs(t, err, errBackendDown)
	assert.Len(t, c.Items(), 1)
	assert.ErrorIs(t, notified, errBackendDown)
}

func TestRefetchFailureKeepsPreviousSnapshot(t *testing.T) {
	c, backend := newJobController()
	ctx := context.Background()

	_, err := c.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)
	require.Len(t, c.Items(), 1)

	// The write lands but the refetch fails; the stale snapshot survives
	backend.failList = true
	_, err = c.Create(ctx, &models.Job{Title: "QA Engineer", Company: "Globex"})
	require.NoError(t, err)
	assert.Len(t, c.Items(), 1)
}

func TestRemoveAbsentIDIsNotAnError(t *testing.T) {
	c, _ := newJobController()
	assert.NoError(t, c.Remove(context.Background(), "never-existed"))
}

func TestSearchProjectsSnapshot(t *testing.T) {
	c, _ := newJobController()
	ctx := context.Background()

	_, err := c.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme", Status: models.JobStatusAction})
	require.NoError(t, err)
	_, err = c.Create(ctx, &models.Job{Title: "QA Engineer", Company: "Globex", Status: models.JobStatusHold})
	require.NoError(t, err)

	assert.Len(t, c.Search("engineer", models.StatusAll), 2)
	assert.Len(t, c.Search("", models.JobStatusHold), 1)
	assert.Empty(t, c.Search("designer", models.StatusAll))
}

func TestPatchFieldsRefetches(t *testing.T) {
	c, _ := newJobController()
	ctx := context.Background()

	created, err := c.Create(ctx, &models.Job{Title: "Backend Engineer", Company: "Acme", Status: models.JobStatusAction})
	require.NoError(t, err)

	_, err = c.PatchFields(ctx, created.ID, map[string]any{"status": models.JobStatusClosed})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.JobStatusClosed, items[0].Status)
}
