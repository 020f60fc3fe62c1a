package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// AdminGateway serves admin auth and account management from the bot backend.
type AdminGateway struct {
	Bot *Client
}

func NewAdminGateway(bot *Client) *AdminGateway { return &AdminGateway{Bot: bot} }

func (g *AdminGateway) Login(ctx context.Context, username, password string) (*entity.SessionToken, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var tok entity.SessionToken
	if err := g.Bot.PostForm(ctx, "/admin/login", form, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (g *AdminGateway) List(ctx context.Context, token string) ([]entity.Admin, error) {
	var out []entity.Admin
	if err := g.Bot.GetJSON(ctx, "/admin/list", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *AdminGateway) Create(ctx context.Context, token string, in entity.NewAdmin) (*entity.Admin, error) {
	var out struct {
		Message string       `json:"message"`
		Admin   entity.Admin `json:"admin"`
	}
	if err := g.Bot.SendJSON(ctx, http.MethodPost, "/admin/register", token, in, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (g *AdminGateway) Delete(ctx context.Context, token string, id int64) error {
	return g.Bot.SendJSON(ctx, http.MethodDelete, "/admin/"+strconv.FormatInt(id, 10), token, nil, nil)
}

var (
	_ repository.AuthRepository  = (*AdminGateway)(nil)
	_ repository.AdminRepository = (*AdminGateway)(nil)
)
