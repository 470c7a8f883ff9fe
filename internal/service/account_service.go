package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrAccountNotFound = errors.New("social account not found")

type AccountService interface {
	List(ctx context.Context) []models.SocialAccount
	Create(ctx context.Context, ac *transfer.AccountCreation) (*models.SocialAccount, error)
	Update(ctx context.Context, ac *transfer.AccountCreation) (*models.SocialAccount, error)
	Remove(ctx context.Context, id string) error
}

type accountService struct {
	ar  repository.SocialAccountRepository
	now Clock
}

func NewAccountService(ar repository.SocialAccountRepository, now Clock) AccountService {
	return &accountService{ar: ar, now: now}
}

func (s *accountService) List(ctx context.Context) []models.SocialAccount {
	return s.ar.List(ctx)
}

func (s *accountService) Create(ctx context.Context, ac *transfer.AccountCreation) (*models.SocialAccount, error) {
	if ac == nil {
		err := errors.New("account data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if err := validateStruct(ac); err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	account := s.apply(models.SocialAccount{ID: id}, ac)
	s.ar.Create(ctx, account)
	return &account, nil
}

func (s *accountService) Update(ctx context.Context, ac *transfer.AccountCreation) (*models.SocialAccount, error) {
	if ac == nil || ac.ID == "" {
		return nil, fieldError("id", "is required")
	}
	if err := validateStruct(ac); err != nil {
		return nil, err
	}

	current, ok := s.ar.GetByID(ctx, ac.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, ac.ID)
	}

	account := s.apply(*current, ac)
	if !s.ar.Update(ctx, account) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, ac.ID)
	}
	return &account, nil
}

func (s *accountService) Remove(ctx context.Context, id string) error {
	if !s.ar.Remove(ctx, id) {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return nil
}

func (s *accountService) apply(account models.SocialAccount, ac *transfer.AccountCreation) models.SocialAccount {
	account.Platform = models.Platform(ac.Platform)
	account.Username = ac.Username
	account.Followers = ac.Followers
	account.ProfileImage = ac.ProfileImage
	if ac.IsConnected && !account.IsConnected {
		synced := s.now()
		account.LastSync = &synced
	}
	account.IsConnected = ac.IsConnected
	return account
}
