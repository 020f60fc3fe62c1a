package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/response"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

type ResourceHandler struct {
	Svc    *application.DocumentService
	Logger *logrus.Logger
}

func NewResourceHandler(svc *application.DocumentService, logger *logrus.Logger) *ResourceHandler {
	return &ResourceHandler{Svc: svc, Logger: logger}
}

type resourcesPage struct {
	History        []entity.ArchivedDocument
	HistoryEnabled bool
	MaxBytes       int64
	Error          string
}

func (h *ResourceHandler) Page(c *gin.Context) {
	p := resourcesPage{HistoryEnabled: h.Svc.Archive != nil, MaxBytes: h.Svc.MaxBytes}
	hist, err := h.Svc.History(c.Request.Context())
	if err != nil {
		helpers.LogWarn(h.Logger, "list upload history failed", err, nil)
		p.Error = "Failed to load upload history"
	}
	p.History = hist
	renderPage(c, http.StatusOK, views.Resources, "Resources Management", p)
}

// Upload forwards one multipart PDF to ingestion. The role is checked
// before the form is parsed so a denied caller never streams the body.
func (h *ResourceHandler) Upload(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.Role.CanUpload() {
		failure(c, application.ErrPermissionDenied, "")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			failure(c, &application.UploadError{Reason: application.MsgTooLarge}, "")
			return
		}
		failure(c, &application.UploadError{Reason: application.MsgNoFile}, "")
		return
	}
	if err := h.Svc.Validate(fh.Filename, fh.Size); err != nil {
		failure(c, err, "")
		return
	}
	f, err := fh.Open()
	if err != nil {
		failure(c, &application.UploadError{Reason: application.MsgNoFile}, "")
		return
	}
	defer f.Close()

	id := application.UploadID(c.PostForm("upload_id"))
	res, err := h.Svc.Upload(c.Request.Context(), actor, application.UploadInput{
		ID:       id,
		FileName: fh.Filename,
		Size:     fh.Size,
		Content:  f,
	})
	if err != nil {
		helpers.LogError(h.Logger, "document upload failed", err, logrus.Fields{"upload_id": id, "file": fh.Filename})
		failure(c, err, "Upload failed")
		return
	}
	response.Success(c, http.StatusOK, res, "Upload complete", map[string]any{"upload_id": id})
}

func (h *ResourceHandler) Progress(c *gin.Context) {
	p, err := h.Svc.ProgressOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, err, "Failed to read progress")
		return
	}
	response.Success(c, http.StatusOK, progressView{UploadProgress: *p, Percent: p.Percent()}, "progress", nil)
}

type progressView struct {
	entity.UploadProgress
	Percent int `json:"percent"`
}
