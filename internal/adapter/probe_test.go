package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != probePath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDiscoverBaseFirstHealthyWins(t *testing.T) {
	first := probeServer(t, http.StatusOK)
	second := probeServer(t, http.StatusOK)

	base, err := DiscoverBase(context.Background(), http.DefaultClient,
		[]string{first.URL, second.URL}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, first.URL, base)
}

func TestDiscoverBaseSkipsUnhealthyCandidates(t *testing.T) {
	broken := probeServer(t, http.StatusInternalServerError)
	healthy := probeServer(t, http.StatusOK)

	base, err := DiscoverBase(context.Background(), http.DefaultClient,
		[]string{"http://127.0.0.1:1", broken.URL, healthy.URL}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, healthy.URL, base)
}

func TestDiscoverBaseAllFailing(t *testing.T) {
	broken := probeServer(t, http.StatusServiceUnavailable)

	_, err := DiscoverBase(context.Background(), http.DefaultClient,
		[]string{"http://127.0.0.1:1", broken.URL}, 200*time.Millisecond)
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestDiscoverBaseTrimsTrailingSlash(t *testing.T) {
	healthy := probeServer(t, http.StatusOK)

	base, err := DiscoverBase(context.Background(), http.DefaultClient,
		[]string{healthy.URL + "/"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, healthy.URL, base)
}

func TestDiscoverBaseHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DiscoverBase(ctx, http.DefaultClient, []string{"http://127.0.0.1:1"}, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
