package adapter

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// probePath is the known-cheap endpoint used for backend discovery
const probePath = "/health/live"

// DiscoverBase probes the candidate base URLs in order, issuing a lightweight
// GET with a short per-attempt timeout, and adopts the first base that
// responds with a success status. Probing is strictly sequential, so the
// first successful candidate in list order wins regardless of relative
// latency. All candidates failing yields a single ErrNoBackend.
func DiscoverBase(ctx context.Context, client *http.Client, candidates []string, timeout time.Duration) (string, error) {
	for _, candidate := range candidates {
		base := strings.TrimRight(strings.TrimSpace(candidate), "/")
		if base == "" {
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, base+probePath, nil)
		if err != nil {
			cancel()
			continue
		}

		resp, err := client.Do(req)
		cancel()
		if err != nil {
			continue
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return base, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", ErrNoBackend
}
