package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/config"
	"recruitdesk/pkg/models"
)

func restClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(probePath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Client.BaseURL = server.URL
	cfg.Client.ProbeTimeout = time.Second
	cfg.Client.RequestTimeout = 2 * time.Second
	return NewClient(cfg)
}

func TestRESTListBareArrayShape(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs", r.URL.Path)
		json.NewEncoder(w).Encode([]*models.Job{{Title: "Backend Engineer", Company: "Acme"}})
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	items, err := a.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Backend Engineer", items[0].Title)
}

func TestRESTListWrappedShape(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ListResponse[*models.Job]{
			Items: []*models.Job{{Title: "QA Engineer", Company: "Globex"}},
			Total: 1,
		})
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	items, err := a.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "QA Engineer", items[0].Title)
}

func TestRESTListUnexpectedShapeYieldsEmpty(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"not a collection"`))
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	items, err := a.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRESTListForwardsFilterParams(t *testing.T) {
	var query, status string
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		status = r.URL.Query().Get("status")
		w.Write([]byte(`[]`))
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	_, err := a.List(context.Background(), Filter{Query: "engineer", Status: models.JobStatusHold})
	require.NoError(t, err)
	assert.Equal(t, "engineer", query)
	assert.Equal(t, models.JobStatusHold, status)

	// The All sentinel is not forwarded
	_, err = a.List(context.Background(), Filter{Status: models.StatusAll})
	require.NoError(t, err)
	assert.Equal(t, "", status)
}

func TestRESTGetMaps404ToNotFound(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	_, err := a.Get(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestRESTPatchLoneStatusUsesStatusRoute(t *testing.T) {
	var path string
	var body map[string]any
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(&models.Job{Title: "Backend Engineer", Company: "Acme", Status: models.JobStatusHold})
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	_, err := a.PatchFields(context.Background(), "j1", map[string]any{"status": models.JobStatusHold})
	require.NoError(t, err)
	assert.Equal(t, "/api/jobs/j1/status", path)
	assert.Equal(t, map[string]any{"status": models.JobStatusHold}, body)

	_, err = a.PatchFields(context.Background(), "j1", map[string]any{"status": models.JobStatusHold, "location": "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "/api/jobs/j1", path)
}

func TestRESTRemoveTolerates404(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	assert.NoError(t, a.Remove(context.Background(), "already-gone"))
}

func TestRESTTransportErrorCarriesStatus(t *testing.T) {
	client := restClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	a := NewRESTAdapter(client, models.JobSchema)

	_, err := a.Get(context.Background(), "j1")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}
