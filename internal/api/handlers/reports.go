package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
)

// ReportsHandler aggregates per-status counts across the pipeline for the
// back-office summary screen
type ReportsHandler struct {
	store  *adapter.Store
	logger logging.Logger
}

// NewReportsHandler creates the reports handler
func NewReportsHandler(store *adapter.Store) *ReportsHandler {
	return &ReportsHandler{store: store, logger: logging.GetGlobalLogger()}
}

// Summary handles GET /api/reports/summary
func (h *ReportsHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	jobs, err := countByStatus(ctx, h.store.Jobs, models.JobSchema)
	if err != nil {
		return respondError(c, err)
	}
	candidates, err := countByStatus(ctx, h.store.Candidates, models.CandidateSchema)
	if err != nil {
		return respondError(c, err)
	}
	applications, err := countByStatus(ctx, h.store.Applications, models.ApplicationSchema)
	if err != nil {
		return respondError(c, err)
	}
	interviews, err := countByStatus(ctx, h.store.Interviews, models.InterviewSchema)
	if err != nil {
		return respondError(c, err)
	}
	selected, err := h.store.Selected.List(ctx, adapter.Filter{})
	if err != nil {
		return respondError(c, err)
	}
	joined, err := h.store.Joined.List(ctx, adapter.Filter{})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ReportSummary{
		Jobs:         jobs,
		Candidates:   candidates,
		Applications: applications,
		Interviews:   interviews,
		Selected:     len(selected),
		Joined:       len(joined),
		GeneratedAt:  time.Now(),
	})
}

// countByStatus tallies a collection by its status dimension. Every enum
// member appears in the result, including zero counts.
func countByStatus[R models.Entity](ctx context.Context, store adapter.Adapter[R], schema models.Schema[R]) (map[string]int, error) {
	items, err := store.List(ctx, adapter.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(schema.Statuses))
	for _, status := range schema.Statuses {
		counts[status] = 0
	}
	for _, item := range items {
		counts[schema.Status(item)]++
	}
	return counts, nil
}
