package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

// DashboardPrefix groups every page behind the edge gate.
const DashboardPrefix = "/dashboard"

type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboardModule(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	d := rg.Group(DashboardPrefix)
	d.GET("", m.Handler.Home)
	d.GET("/analysis", m.Handler.Analysis)
}
