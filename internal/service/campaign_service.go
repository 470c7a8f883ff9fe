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

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignService interface {
	List(ctx context.Context) []models.Campaign
	Active(ctx context.Context) (*models.Campaign, bool)
	Create(ctx context.Context, cc *transfer.CampaignCreation) (*models.Campaign, error)
	Update(ctx context.Context, cc *transfer.CampaignCreation) (*models.Campaign, error)
	Remove(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}

type campaignService struct {
	cr  repository.CampaignRepository
	now Clock
}

func NewCampaignService(cr repository.CampaignRepository, now Clock) CampaignService {
	return &campaignService{cr: cr, now: now}
}

func (s *campaignService) List(ctx context.Context) []models.Campaign {
	return s.cr.List(ctx)
}

func (s *campaignService) Active(ctx context.Context) (*models.Campaign, bool) {
	return s.cr.Active(ctx)
}

func (s *campaignService) Create(ctx context.Context, cc *transfer.CampaignCreation) (*models.Campaign, error) {
	if cc == nil {
		err := errors.New("campaign data is nil")
		slog.Error(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	campaign, err := buildCampaign(models.Campaign{
		ID:        id,
		Status:    models.CampaignStatusDraft,
		CreatedAt: s.now(),
	}, cc)
	if err != nil {
		return nil, err
	}

	s.cr.Create(ctx, campaign)
	return &campaign, nil
}

func (s *campaignService) Update(ctx context.Context, cc *transfer.CampaignCreation) (*models.Campaign, error) {
	if cc == nil || cc.ID == "" {
		return nil, fieldError("id", "is required")
	}

	current, ok := s.cr.GetByID(ctx, cc.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, cc.ID)
	}

	campaign, err := buildCampaign(*current, cc)
	if err != nil {
		return nil, err
	}
	if !s.cr.Update(ctx, campaign) {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, cc.ID)
	}
	return &campaign, nil
}

func (s *campaignService) Remove(ctx context.Context, id string) error {
	if !s.cr.Remove(ctx, id) {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	return nil
}

func (s *campaignService) Activate(ctx context.Context, id string) error {
	if !s.cr.SetActive(ctx, id) {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	return nil
}

func buildCampaign(c models.Campaign, cc *transfer.CampaignCreation) (models.Campaign, error) {
	if err := validateStruct(cc); err != nil {
		return models.Campaign{}, err
	}

	start, err := models.ParseDate(cc.StartDate)
	if err != nil {
		return models.Campaign{}, fieldError("start_date", "must be a date like 2006-01-02")
	}
	c.StartDate = start
	c.EndDate = nil
	if cc.EndDate != "" {
		end, err := models.ParseDate(cc.EndDate)
		if err != nil {
			return models.Campaign{}, fieldError("end_date", "must be a date like 2006-01-02")
		}
		if end.Before(start) {
			return models.Campaign{}, fieldError("end_date", "must not be before start_date")
		}
		c.EndDate = &end
	}

	c.Name = cc.Name
	c.Description = cc.Description
	c.ContentIDs = append([]string{}, cc.ContentIDs...)
	c.Platforms = make([]models.Platform, len(cc.Platforms))
	for i, p := range cc.Platforms {
		c.Platforms[i] = models.Platform(p)
	}
	c.ScheduleType = models.ScheduleType(cc.ScheduleType)
	if cc.Status != "" {
		c.Status = models.CampaignStatus(cc.Status)
	}
	return c, nil
}
