package repository

import (
	"context"
	"sync"

	"github.com/maheshrc27/fluxora/internal/models"
)

type CampaignRepository interface {
	List(ctx context.Context) []models.Campaign
	GetByID(ctx context.Context, id string) (*models.Campaign, bool)
	Create(ctx context.Context, c models.Campaign)
	Update(ctx context.Context, c models.Campaign) bool
	Remove(ctx context.Context, id string) bool
	SetActive(ctx context.Context, id string) bool
	Active(ctx context.Context) (*models.Campaign, bool)
	Set(ctx context.Context, campaigns []models.Campaign)
}

type campaignRepository struct {
	campaigns table[models.Campaign]

	mu       sync.RWMutex
	activeID string
}

func NewCampaignRepository() CampaignRepository {
	return &campaignRepository{}
}

func (r *campaignRepository) List(ctx context.Context) []models.Campaign {
	return r.campaigns.snapshot()
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, bool) {
	c, ok := r.campaigns.get(id)
	if !ok {
		return nil, false
	}
	return &c, true
}

func (r *campaignRepository) Create(ctx context.Context, c models.Campaign) {
	r.campaigns.add(c)
}

func (r *campaignRepository) Update(ctx context.Context, c models.Campaign) bool {
	return r.campaigns.update(c.ID, func(models.Campaign) models.Campaign {
		return c
	})
}

func (r *campaignRepository) Remove(ctx context.Context, id string) bool {
	if !r.campaigns.remove(id) {
		return false
	}
	r.mu.Lock()
	if r.activeID == id {
		r.activeID = ""
	}
	r.mu.Unlock()
	return true
}

// SetActive marks a campaign as the one being edited; an empty id clears it.
func (r *campaignRepository) SetActive(ctx context.Context, id string) bool {
	if id != "" {
		if _, ok := r.campaigns.get(id); !ok {
			return false
		}
	}
	r.mu.Lock()
	r.activeID = id
	r.mu.Unlock()
	return true
}

func (r *campaignRepository) Active(ctx context.Context) (*models.Campaign, bool) {
	r.mu.RLock()
	id := r.activeID
	r.mu.RUnlock()
	if id == "" {
		return nil, false
	}
	return r.GetByID(ctx, id)
}

func (r *campaignRepository) Set(ctx context.Context, campaigns []models.Campaign) {
	r.campaigns.set(campaigns)
}
