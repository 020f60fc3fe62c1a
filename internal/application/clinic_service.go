package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

const (
	DefaultClinicPageSize = 10
	MaxClinicPageSize     = 1000
)

type ClinicService struct {
	Repo   repo.ClinicRepository
	Logger *logrus.Logger
}

func NewClinicService(r repo.ClinicRepository, logger *logrus.Logger) *ClinicService {
	return &ClinicService{Repo: r, Logger: logger}
}

// ClinicPage is one page of clinics plus the paging inputs that produced it.
type ClinicPage struct {
	Clinics []entity.Clinic
	Page    int
	Limit   int
	Country string
	HasNext bool
}

// PageFilter turns 1-based page/limit into the backend's skip/limit.
func PageFilter(page, limit int, country string) entity.ClinicFilter {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultClinicPageSize
	}
	if limit > MaxClinicPageSize {
		limit = MaxClinicPageSize
	}
	return entity.ClinicFilter{Skip: (page - 1) * limit, Limit: limit, Country: strings.TrimSpace(country)}
}

func (s *ClinicService) List(ctx context.Context, actor entity.Actor, page, limit int, country string) (*ClinicPage, error) {
	f := PageFilter(page, limit, country)
	clinics, err := s.Repo.List(ctx, actor.Token, f)
	if err != nil {
		return nil, err
	}
	return &ClinicPage{
		Clinics: clinics,
		Page:    f.Skip/f.Limit + 1,
		Limit:   f.Limit,
		Country: f.Country,
		HasNext: len(clinics) == f.Limit,
	}, nil
}

func (s *ClinicService) Create(ctx context.Context, actor entity.Actor, in entity.ClinicInput) (*entity.Clinic, error) {
	if !actor.Role.CanManageContent() {
		return nil, ErrPermissionDenied
	}
	c, err := s.Repo.Create(ctx, actor.Token, trimClinic(in))
	if err != nil {
		return nil, err
	}
	s.logChange("clinic created", c.ID, actor)
	return c, nil
}

func (s *ClinicService) Update(ctx context.Context, actor entity.Actor, id int64, in entity.ClinicInput) (*entity.Clinic, error) {
	if !actor.Role.CanManageContent() {
		return nil, ErrPermissionDenied
	}
	c, err := s.Repo.Update(ctx, actor.Token, id, trimClinic(in))
	if err != nil {
		return nil, err
	}
	s.logChange("clinic updated", id, actor)
	return c, nil
}

func (s *ClinicService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if !actor.Role.CanManageContent() {
		return ErrPermissionDenied
	}
	if err := s.Repo.Delete(ctx, actor.Token, id); err != nil {
		return err
	}
	s.logChange("clinic deleted", id, actor)
	return nil
}

func (s *ClinicService) logChange(msg string, id int64, actor entity.Actor) {
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"clinic_id": id, "by": actor.Subject}).Info(msg)
	}
}

func trimClinic(in entity.ClinicInput) entity.ClinicInput {
	for _, f := range []*string{
		&in.ClinicName, &in.Services, &in.Location, &in.Phone, &in.Website,
		&in.GoogleLink, &in.SourceCountry, &in.PhoneCombined, &in.EmailCombined,
	} {
		*f = strings.TrimSpace(*f)
	}
	return in
}
