package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/config"
	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// CandidateHandler extends the uniform CRUD surface with resume attachments:
// create/update accept multipart bodies carrying a `data` JSON part plus an
// optional `resume` file, and the stored file is served back by name.
type CandidateHandler struct {
	*ResourceHandler[*models.Candidate]
	uploadsDir string
	maxSize    int64
}

// NewCandidateHandler creates the candidate handler
func NewCandidateHandler(cfg *config.Config, store adapter.Adapter[*models.Candidate]) *CandidateHandler {
	return &CandidateHandler{
		ResourceHandler: NewResourceHandler(models.CandidateSchema, store, models.ParseCandidate),
		uploadsDir:      cfg.Uploads.Dir,
		maxSize:         cfg.Uploads.MaxSize,
	}
}

// Create handles POST /api/candidates, multipart or plain JSON
func (h *CandidateHandler) Create(c echo.Context) error {
	if !isMultipart(c) {
		return h.ResourceHandler.Create(c)
	}

	candidate, err := h.parseMultipart(c)
	if err != nil {
		return respondError(c, err)
	}

	created, err := h.store.Create(c.Request().Context(), candidate)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.Info("Candidate created", map[string]interface{}{
		"record_id":  created.GetID(),
		"has_resume": created.ResumeFile != "",
		"request_id": requestID(c),
	})
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/candidates/{id}, multipart or plain JSON
func (h *CandidateHandler) Update(c echo.Context) error {
	if !isMultipart(c) {
		return h.ResourceHandler.Update(c)
	}

	candidate, err := h.parseMultipart(c)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.store.Update(c.Request().Context(), c.Param("id"), candidate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DownloadResume handles GET /api/candidates/resume/{file}, streaming the
// stored attachment
func (h *CandidateHandler) DownloadResume(c echo.Context) error {
	name := c.Param("file")
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid resume file name")
	}

	path := filepath.Join(h.uploadsDir, name)
	if _, err := os.Stat(path); err != nil {
		return errorJSON(c, http.StatusNotFound, "not_found", "Resume file not found")
	}
	return c.Attachment(path, name)
}

// Register wires the candidate routes, including the resume side channel
func (h *CandidateHandler) Register(group *echo.Group) {
	resource := group.Group("/" + h.schema.Name)
	resource.GET("", h.List)
	resource.POST("", h.Create)
	resource.GET("/resume/:file", h.DownloadResume)
	resource.GET("/:id", h.Get)
	resource.PUT("/:id", h.Update)
	resource.PATCH("/:id", h.Patch)
	resource.PATCH("/:id/status", h.PatchStatus)
	resource.DELETE("/:id", h.Delete)
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// parseMultipart reads the `data` JSON part and stores the optional `resume`
// file, recording the assigned file name on the candidate
func (h *CandidateHandler) parseMultipart(c echo.Context) (*models.Candidate, error) {
	data := c.FormValue("data")
	if data == "" {
		return nil, utils.NewBadRequestError("Multipart body must include a data field")
	}

	candidate, err := models.ParseCandidate([]byte(data))
	if err != nil {
		return nil, err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		// No attachment with this submission
		return candidate, nil
	}

	fileName, err := h.saveResume(file.Filename, file.Size, func() (io.ReadCloser, error) {
		return file.Open()
	})
	if err != nil {
		return nil, err
	}
	candidate.ResumeFile = fileName
	return candidate, nil
}

// saveResume writes the upload under a fresh name in the uploads directory
func (h *CandidateHandler) saveResume(original string, size int64, open func() (io.ReadCloser, error)) (string, error) {
	if size > h.maxSize {
		return "", utils.NewValidationError(fmt.Sprintf("resume exceeds the %d byte limit", h.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(original))
	if strings.ContainsAny(ext, `/\`) {
		ext = ""
	}
	fileName := utils.GenerateRecordID() + ext

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", utils.NewInternalServerError("failed to prepare uploads directory")
	}

	src, err := open()
	if err != nil {
		return "", utils.NewBadRequestError("failed to read resume upload")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadsDir, fileName))
	if err != nil {
		return "", utils.NewInternalServerError("failed to store resume upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", utils.NewInternalServerError("failed to store resume upload")
	}
	return fileName, nil
}
