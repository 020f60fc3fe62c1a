package repository

import (
	"context"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

// AuthRepository exchanges credentials for a session token.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*entity.SessionToken, error)
}

type AdminRepository interface {
	List(ctx context.Context, token string) ([]entity.Admin, error)
	Create(ctx context.Context, token string, in entity.NewAdmin) (*entity.Admin, error)
	Delete(ctx context.Context, token string, id int64) error
}
