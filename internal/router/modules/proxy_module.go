package modules

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

// ProxyModule mounts the backend relay under /api. The edge gate treats
// /api as public; the backend authorizes each call itself.
type ProxyModule struct {
	Handler *handlers.ProxyHandler
	Origins []string
}

func NewProxyModule(h *handlers.ProxyHandler, origins []string) *ProxyModule {
	return &ProxyModule{Handler: h, Origins: origins}
}

func (m *ProxyModule) Register(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	// cors.New panics without an origin
	if len(m.Origins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     m.Origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	api.Any("/*path", m.Handler.Handle)
}
