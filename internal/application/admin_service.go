package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

type AdminService struct {
	Repo   repo.AdminRepository
	Logger *logrus.Logger
}

func NewAdminService(r repo.AdminRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Repo: r, Logger: logger}
}

// List always asks the backend; what the page shows is gated by the caller.
func (s *AdminService) List(ctx context.Context, actor entity.Actor) ([]entity.Admin, error) {
	return s.Repo.List(ctx, actor.Token)
}

func (s *AdminService) Create(ctx context.Context, actor entity.Actor, in entity.NewAdmin) (*entity.Admin, error) {
	if !actor.Role.CanManageAdmins() {
		return nil, ErrPermissionDenied
	}
	if in.Role != "" {
		in.Role = entity.NormalizeRole(in.Role).String()
	}
	a, err := s.Repo.Create(ctx, actor.Token, in)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"username": in.Username, "by": actor.Subject}).Info("admin created")
	}
	return a, nil
}

func (s *AdminService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if !actor.Role.CanManageAdmins() {
		return ErrPermissionDenied
	}
	if err := s.Repo.Delete(ctx, actor.Token, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"admin_id": id, "by": actor.Subject}).Info("admin deleted")
	}
	return nil
}
