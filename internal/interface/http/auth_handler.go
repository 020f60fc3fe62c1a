package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

const (
	homePath        = "/dashboard"
	msgInvalidLogin = "Invalid username or password"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginForm struct {
	Username string `form:"username" binding:"required,notblank"`
	Password string `form:"password" binding:"required"`
	Redirect string `form:"redirect"`
}

type loginPage struct {
	Error    string
	Username string
	Redirect string
}

// LoginPage renders the sign-in form. The redirect query set by the edge
// gate is carried through the form but not acted on.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, views.Login, views.Page{Title: "Login", Data: loginPage{Redirect: c.Query("redirect")}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var f loginForm
	if err := c.ShouldBind(&f); err != nil {
		h.loginFailed(c, http.StatusBadRequest, f, "Please enter your username and password.")
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), f.Username, f.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			h.loginFailed(c, http.StatusUnauthorized, f, repo.DetailOr(err, msgInvalidLogin))
			return
		}
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"username": f.Username})
		h.loginFailed(c, http.StatusBadGateway, f, pageError(err, "Login failed"))
		return
	}
	h.Cookies.SetToken(c, token)
	c.Redirect(http.StatusSeeOther, homePath)
}

func (h *AuthHandler) loginFailed(c *gin.Context, status int, f loginForm, msg string) {
	c.HTML(status, views.Login, views.Page{Title: "Login", Data: loginPage{
		Error:    msg,
		Username: strings.TrimSpace(f.Username),
		Redirect: f.Redirect,
	}})
}
