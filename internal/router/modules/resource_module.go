package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

type ResourceModule struct {
	Handler *handlers.ResourceHandler
}

func NewResourceModule(h *handlers.ResourceHandler) *ResourceModule {
	return &ResourceModule{Handler: h}
}

func (m *ResourceModule) Register(rg *gin.RouterGroup) {
	d := rg.Group(DashboardPrefix + "/resources-management")
	d.GET("", m.Handler.Page)
	d.POST("/upload", m.Handler.Upload)
	d.GET("/uploads/:id", m.Handler.Progress)
}
