package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/transfer"
	"github.com/maheshrc27/fluxora/pkg/utils"
)

const SessionDuration = 7 * 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, l *transfer.Login) (string, models.User, error)
	Session(token string) (*transfer.SessionClaims, error)
	CurrentUser(claims *transfer.SessionClaims) models.User
}

type authService struct {
	cfg      config.Config
	fallback models.User
}

// NewAuthService issues mock sessions. fallback is the profile shown when no
// session is present.
func NewAuthService(cfg config.Config, fallback models.User) AuthService {
	return &authService{
		cfg:      cfg,
		fallback: fallback,
	}
}

// Login accepts any name; there are no credentials to check.
func (s *authService) Login(ctx context.Context, l *transfer.Login) (string, models.User, error) {
	if l == nil {
		err := errors.New("login data is nil")
		slog.Error(err.Error())
		return "", models.User{}, err
	}
	if err := validateStruct(l); err != nil {
		return "", models.User{}, err
	}

	token, err := utils.GenerateToken(s.cfg.SecretKey, l.Name, l.Email, SessionDuration)
	if err != nil {
		return "", models.User{}, err
	}

	return token, s.CurrentUser(&transfer.SessionClaims{Name: l.Name, Email: l.Email}), nil
}

func (s *authService) Session(token string) (*transfer.SessionClaims, error) {
	return utils.ValidateToken(s.cfg.SecretKey, token)
}

func (s *authService) CurrentUser(claims *transfer.SessionClaims) models.User {
	user := s.fallback
	if claims == nil {
		return user
	}
	user.Name = claims.Name
	if claims.Email != "" {
		user.Email = claims.Email
	}
	return user
}
