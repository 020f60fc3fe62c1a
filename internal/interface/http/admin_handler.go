package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/response"
	"github.com/rafikey/rafikey-admin/pkg/validation"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type createAdminRequest struct {
	Username  string `json:"username" binding:"required,notblank"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	AdminCode string `json:"admin_code" binding:"required,notblank"`
	Role      string `json:"role" binding:"omitempty,adminrole"`
}

type adminsPage struct {
	Admins []entity.Admin
	Error  string
}

// Page always asks the backend; the template decides what the role may see.
func (h *AdminHandler) Page(c *gin.Context) {
	var p adminsPage
	admins, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		helpers.LogWarn(h.Logger, "list admins failed", err, nil)
		p.Error = pageError(err, "Failed to fetch admins")
	}
	p.Admins = admins
	renderPage(c, http.StatusOK, views.Admins, "Admins", p)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Please fill all required fields.", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), entity.NewAdmin{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AdminCode: req.AdminCode,
		Role:      req.Role,
	})
	if err != nil {
		failure(c, err, "Failed to add admin")
		return
	}
	response.Success(c, http.StatusCreated, a, "Admin added successfully", nil)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		failure(c, err, "Failed to delete admin")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id}, "Admin deleted successfully", nil)
}
