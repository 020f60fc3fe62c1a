package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// ClinicGateway serves clinic CRUD from the core backend.
type ClinicGateway struct {
	Core *Client
}

func NewClinicGateway(core *Client) *ClinicGateway { return &ClinicGateway{Core: core} }

func (g *ClinicGateway) List(ctx context.Context, token string, f entity.ClinicFilter) ([]entity.Clinic, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(f.Skip))
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	var out []entity.Clinic
	if err := g.Core.GetJSON(ctx, "/clinics/clinics", token, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ClinicGateway) Create(ctx context.Context, token string, in entity.ClinicInput) (*entity.Clinic, error) {
	var out entity.Clinic
	if err := g.Core.SendJSON(ctx, http.MethodPost, "/clinics/", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ClinicGateway) Update(ctx context.Context, token string, id int64, in entity.ClinicInput) (*entity.Clinic, error) {
	var out entity.Clinic
	if err := g.Core.SendJSON(ctx, http.MethodPut, clinicPath(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ClinicGateway) Delete(ctx context.Context, token string, id int64) error {
	return g.Core.SendJSON(ctx, http.MethodDelete, clinicPath(id), token, nil, nil)
}

func clinicPath(id int64) string { return "/clinics/clinics/" + strconv.FormatInt(id, 10) }

var _ repository.ClinicRepository = (*ClinicGateway)(nil)
