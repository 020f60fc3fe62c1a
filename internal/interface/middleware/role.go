package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

const actorKey = "actor"

// Actor decodes the session cookie once per request and stores the caller
// in the Gin context.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, application.ActorFromToken(helpers.Token(c)))
		c.Next()
	}
}

// ActorFrom returns the caller stored by Actor. Without it the caller is
// unauthenticated.
func ActorFrom(c *gin.Context) entity.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entity.Actor); ok {
			return a
		}
	}
	return entity.Actor{Role: entity.RoleUnauthenticated}
}
