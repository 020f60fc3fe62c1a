package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the admin bearer token.
const TokenCookie = "admin_token"

// SessionLifetime bounds the token cookie. Tokens carry their own expiry upstream.
const SessionLifetime = 24 * time.Hour

type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

// SetToken stores the session token for every path.
func (m *Manager) SetToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, token, int(SessionLifetime.Seconds()), "/", m.Domain, m.Secure, true)
}

// Token reads the session token; empty when absent.
func Token(c *gin.Context) string {
	v, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return v
}
