package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
)

// ResourceHandler serves the uniform CRUD surface for one resource
// collection. All six resources share this implementation, parameterized by
// their schema, adapter and parse boundary.
type ResourceHandler[R models.Entity] struct {
	schema models.Schema[R]
	store  adapter.Adapter[R]
	parse  func([]byte) (R, error)
	logger logging.Logger
}

// NewResourceHandler creates the CRUD handler for one resource collection
func NewResourceHandler[R models.Entity](schema models.Schema[R], store adapter.Adapter[R], parse func([]byte) (R, error)) *ResourceHandler[R] {
	return &ResourceHandler[R]{
		schema: schema,
		store:  store,
		parse:  parse,
		logger: logging.GetGlobalLogger(),
	}
}

// List handles GET /api/{resource}
func (h *ResourceHandler[R]) List(c echo.Context) error {
	filter := adapter.Filter{
		Query:  c.QueryParam("q"),
		Status: c.QueryParam("status"),
	}

	items, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list collection", map[string]interface{}{
			"collection": h.schema.Name,
			"request_id": requestID(c),
			"error":      err.Error(),
		})
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ListResponse[R]{Items: items, Total: len(items)})
}

// Get handles GET /api/{resource}/{id}
func (h *ResourceHandler[R]) Get(c echo.Context) error {
	record, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /api/{resource}
func (h *ResourceHandler[R]) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read request body")
	}

	record, err := h.parse(body)
	if err != nil {
		return respondError(c, err)
	}

	created, err := h.store.Create(c.Request().Context(), record)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.Info("Record created", map[string]interface{}{
		"collection": h.schema.Name,
		"record_id":  created.GetID(),
		"request_id": requestID(c),
	})
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/{resource}/{id}: a full replace, so clients send
// complete objects to avoid wiping sibling fields
func (h *ResourceHandler[R]) Update(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read request body")
	}

	record, err := h.parse(body)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.store.Update(c.Request().Context(), c.Param("id"), record)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// PatchStatus handles PATCH /api/{resource}/{id}/status, the inline
// dropdown edit path
func (h *ResourceHandler[R]) PatchStatus(c echo.Context) error {
	var req models.StatusPatchRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}
	if len(h.schema.Statuses) > 0 && !h.schema.ValidStatus(req.Status) {
		return errorJSON(c, http.StatusBadRequest, "validation_failed", "invalid status '"+req.Status+"'")
	}

	patched, err := h.store.PatchFields(c.Request().Context(), c.Param("id"), map[string]any{h.schema.StatusKey(): req.Status})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, patched)
}

// Patch handles PATCH /api/{resource}/{id}: a partial update of arbitrary
// fields, used by inline date and flag edits
func (h *ResourceHandler[R]) Patch(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
	}
	if len(fields) == 0 {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Patch body must contain at least one field")
	}

	patched, err := h.store.PatchFields(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, patched)
}

// Delete handles DELETE /api/{resource}/{id}; deleting an absent id
// succeeds, keeping the operation idempotent
func (h *ResourceHandler[R]) Delete(c echo.Context) error {
	if err := h.store.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Register wires the uniform routes for this resource under the API group
func (h *ResourceHandler[R]) Register(group *echo.Group) {
	resource := group.Group("/" + h.schema.Name)
	resource.GET("", h.List)
	resource.POST("", h.Create)
	resource.GET("/:id", h.Get)
	resource.PUT("/:id", h.Update)
	resource.PATCH("/:id", h.Patch)
	resource.PATCH("/:id/status", h.PatchStatus)
	resource.DELETE("/:id", h.Delete)
}
