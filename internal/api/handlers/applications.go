package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/pkg/models"
)

// ApplicationHandler extends the uniform CRUD surface with create-time
// reference resolution: submitted candidate and job names are matched against
// the live collections and, on an exact hit, the row is linked by ID and its
// empty display fields are filled in. Unmatched names survive as-is.
type ApplicationHandler struct {
	*ResourceHandler[*models.Application]
	candidates adapter.Adapter[*models.Candidate]
	jobs       adapter.Adapter[*models.Job]
}

// NewApplicationHandler creates the application handler
func NewApplicationHandler(store *adapter.Store) *ApplicationHandler {
	return &ApplicationHandler{
		ResourceHandler: NewResourceHandler(models.ApplicationSchema, store.Applications, models.ParseApplication),
		candidates:      store.Candidates,
		jobs:            store.Jobs,
	}
}

// Create handles POST /api/applications with reference resolution
func (h *ApplicationHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read request body")
	}

	app, err := models.ParseApplication(body)
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	h.resolveCandidate(ctx, app)
	h.resolveJob(ctx, app)

	created, err := h.store.Create(ctx, app)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.Info("Application created", map[string]interface{}{
		"record_id":    created.GetID(),
		"candidate_id": created.CandidateID,
		"job_id":       created.JobID,
		"request_id":   requestID(c),
	})
	return c.JSON(http.StatusCreated, created)
}

// resolveCandidate links the application to a candidate by exact
// case-insensitive full-name match. Resolution is best-effort: a lookup
// failure or a miss leaves the literal name untouched.
func (h *ApplicationHandler) resolveCandidate(ctx context.Context, app *models.Application) {
	if app.CandidateID != "" || app.CandidateName == "" {
		return
	}

	items, err := h.candidates.List(ctx, adapter.Filter{})
	if err != nil {
		h.logger.Warn("Candidate resolution lookup failed", map[string]interface{}{"error": err.Error()})
		return
	}

	want := strings.ToLower(app.CandidateName)
	for _, cand := range items {
		if strings.ToLower(strings.TrimSpace(cand.FullName)) == want {
			app.CandidateID = cand.GetID()
			app.CandidateName = cand.FullName
			return
		}
	}
}

// resolveJob links the application to a job by exact case-insensitive title
// match and fills the company display field only when it was left empty
func (h *ApplicationHandler) resolveJob(ctx context.Context, app *models.Application) {
	if app.JobID != "" || app.JobTitle == "" {
		return
	}

	items, err := h.jobs.List(ctx, adapter.Filter{})
	if err != nil {
		h.logger.Warn("Job resolution lookup failed", map[string]interface{}{"error": err.Error()})
		return
	}

	want := strings.ToLower(app.JobTitle)
	for _, job := range items {
		if strings.ToLower(strings.TrimSpace(job.Title)) == want {
			app.JobID = job.GetID()
			app.JobTitle = job.Title
			if app.Company == "" {
				app.Company = job.Company
			}
			return
		}
	}
}

// Register wires the application routes, overriding create with the
// resolving variant
func (h *ApplicationHandler) Register(group *echo.Group) {
	resource := group.Group("/" + h.schema.Name)
	resource.GET("", h.List)
	resource.POST("", h.Create)
	resource.GET("/:id", h.Get)
	resource.PUT("/:id", h.Update)
	resource.PATCH("/:id", h.Patch)
	resource.PATCH("/:id/status", h.PatchStatus)
	resource.DELETE("/:id", h.Delete)
}
