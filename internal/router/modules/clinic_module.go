package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

type ClinicModule struct {
	Handler *handlers.ClinicHandler
}

func NewClinicModule(h *handlers.ClinicHandler) *ClinicModule {
	return &ClinicModule{Handler: h}
}

func (m *ClinicModule) Register(rg *gin.RouterGroup) {
	d := rg.Group(DashboardPrefix + "/clinics")
	d.GET("", m.Handler.Page)
	d.POST("", m.Handler.Create)
	d.PUT("/:id", m.Handler.Update)
	d.DELETE("/:id", m.Handler.Delete)
}
