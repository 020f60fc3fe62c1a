package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

type AuthService struct {
	Repo   repo.AuthRepository
	Logger *logrus.Logger
}

func NewAuthService(r repo.AuthRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Logger: logger}
}

// Login exchanges credentials for an access token. A 401 from the bot
// backend is reported as ErrInvalidCredentials, still carrying the backend
// detail.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	tok, err := s.Repo.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		var se *repo.StatusError
		if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
			return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return "", err
	}
	if tok.AccessToken == "" {
		return "", ErrInvalidCredentials
	}
	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("admin signed in")
	}
	return tok.AccessToken, nil
}
