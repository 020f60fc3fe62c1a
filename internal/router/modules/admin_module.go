package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	d := rg.Group(DashboardPrefix + "/admins")
	d.GET("", m.Handler.Page)
	d.POST("", m.Handler.Create)
	d.DELETE("/:id", m.Handler.Delete)
}
