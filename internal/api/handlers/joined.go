package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/pkg/models"
)

// JoinedCandidateHandler extends the uniform CRUD surface for joined
// candidates by projecting each row into a view carrying the remaining
// tenure days, computed against the current date on every read
type JoinedCandidateHandler struct {
	*ResourceHandler[*models.JoinedCandidate]
	now func() time.Time
}

// NewJoinedCandidateHandler creates the joined-candidate handler
func NewJoinedCandidateHandler(store adapter.Adapter[*models.JoinedCandidate]) *JoinedCandidateHandler {
	return &JoinedCandidateHandler{
		ResourceHandler: NewResourceHandler(models.JoinedCandidateSchema, store, models.ParseJoinedCandidate),
		now:             time.Now,
	}
}

// List handles GET /api/joined-candidates, returning view rows
func (h *JoinedCandidateHandler) List(c echo.Context) error {
	filter := adapter.Filter{
		Query:  c.QueryParam("q"),
		Status: c.QueryParam("status"),
	}

	items, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	now := h.now()
	views := make([]*models.JoinedCandidateView, 0, len(items))
	for _, item := range items {
		views = append(views, &models.JoinedCandidateView{
			JoinedCandidate: *item,
			RemainingDays:   item.RemainingTenure(now),
		})
	}

	return c.JSON(http.StatusOK, models.ListResponse[*models.JoinedCandidateView]{Items: views, Total: len(views)})
}

// Get handles GET /api/joined-candidates/{id}, returning a view row
func (h *JoinedCandidateHandler) Get(c echo.Context) error {
	record, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, &models.JoinedCandidateView{
		JoinedCandidate: *record,
		RemainingDays:   record.RemainingTenure(h.now()),
	})
}

// Register wires the joined-candidate routes with the view-projecting reads
func (h *JoinedCandidateHandler) Register(group *echo.Group) {
	resource := group.Group("/" + h.schema.Name)
	resource.GET("", h.List)
	resource.POST("", h.Create)
	resource.GET("/:id", h.Get)
	resource.PUT("/:id", h.Update)
	resource.PATCH("/:id", h.Patch)
	resource.DELETE("/:id", h.Delete)
}
