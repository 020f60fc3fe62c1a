package application

import (
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// ActorFromToken decodes the role claim of token without verifying it.
// Missing, malformed or unknown claims yield RoleUnauthenticated; the token
// itself is kept so backend calls can still present it.
func ActorFromToken(token string) entity.Actor {
	actor := entity.Actor{Token: token, Role: entity.RoleUnauthenticated}
	if token == "" {
		return actor
	}
	claims, err := helpers.DecodeClaims(token)
	if err != nil {
		return actor
	}
	if role, ok := helpers.StringClaim(claims, "role"); ok {
		actor.Role = entity.NormalizeRole(role)
	}
	if sub, ok := helpers.StringClaim(claims, "sub"); ok {
		actor.Subject = sub
	}
	return actor
}
