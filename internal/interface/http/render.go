package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/response"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

const msgPermissionDenied = "You do not have permission to perform this action."

// viewerOf exposes the caller's role to templates.
func viewerOf(a entity.Actor) views.Viewer {
	return views.Viewer{
		Role:            a.Role.String(),
		RoleLabel:       a.Role.Label(),
		Authenticated:   a.Role.IsAuthenticated(),
		CanManage:       a.Role.CanManageContent(),
		CanManageAdmins: a.Role.CanManageAdmins(),
		CanUpload:       a.Role.CanUpload(),
	}
}

func renderPage(c *gin.Context, status int, name, title string, data any) {
	c.HTML(status, name, views.Page{
		Title:     title,
		Active:    name,
		Viewer:    viewerOf(middleware.ActorFrom(c)),
		RequestID: c.GetString("request_id"),
		Data:      data,
	})
}

// failure maps a service or backend error onto the JSON envelope.
func failure(c *gin.Context, err error, fallback string) {
	var ue *application.UploadError
	switch {
	case errors.Is(err, application.ErrPermissionDenied):
		response.Error[any](c, http.StatusForbidden, msgPermissionDenied, nil)
	case errors.As(err, &ue):
		response.Error[any](c, http.StatusBadRequest, ue.Reason, nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, repo.ErrUnavailable):
		response.Error[any](c, http.StatusBadGateway, "Network error", nil)
	default:
		status := http.StatusBadGateway
		var se *repo.StatusError
		if errors.As(err, &se) && se.Status >= 400 && se.Status < 500 {
			status = se.Status
		}
		response.Error[any](c, status, repo.DetailOr(err, fallback), nil)
	}
}

// pageError is the inline text shown when a page's main fetch fails.
func pageError(err error, fallback string) string {
	if errors.Is(err, repo.ErrUnavailable) {
		return "Network error"
	}
	return repo.DetailOr(err, fallback)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
