package repository

import (
	"context"

	"github.com/maheshrc27/fluxora/internal/models"
)

type SocialAccountRepository interface {
	List(ctx context.Context) []models.SocialAccount
	GetByID(ctx context.Context, id string) (*models.SocialAccount, bool)
	ListConnected(ctx context.Context) []models.SocialAccount
	Create(ctx context.Context, sa models.SocialAccount)
	Update(ctx context.Context, sa models.SocialAccount) bool
	Remove(ctx context.Context, id string) bool
	Set(ctx context.Context, accounts []models.SocialAccount)
}

type socialAccountRepository struct {
	accounts table[models.SocialAccount]
}

func NewSocialAccountRepository() SocialAccountRepository {
	return &socialAccountRepository{}
}

func (r *socialAccountRepository) List(ctx context.Context) []models.SocialAccount {
	return r.accounts.snapshot()
}

func (r *socialAccountRepository) GetByID(ctx context.Context, id string) (*models.SocialAccount, bool) {
	sa, ok := r.accounts.get(id)
	if !ok {
		return nil, false
	}
	return &sa, true
}

func (r *socialAccountRepository) ListConnected(ctx context.Context) []models.SocialAccount {
	return r.accounts.filter(func(sa models.SocialAccount) bool { return sa.IsConnected })
}

func (r *socialAccountRepository) Create(ctx context.Context, sa models.SocialAccount) {
	r.accounts.add(sa)
}

func (r *socialAccountRepository) Update(ctx context.Context, sa models.SocialAccount) bool {
	return r.accounts.update(sa.ID, func(models.SocialAccount) models.SocialAccount {
		return sa
	})
}

func (r *socialAccountRepository) Remove(ctx context.Context, id string) bool {
	return r.accounts.remove(id)
}

func (r *socialAccountRepository) Set(ctx context.Context, accounts []models.SocialAccount) {
	r.accounts.set(accounts)
}
