package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

// AuthModule serves the login form on the public root path.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.LoginPage)
	rg.POST("/", m.Handler.Login)
}
