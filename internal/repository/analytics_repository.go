package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/maheshrc27/fluxora/internal/models"
)

type AnalyticsRepository interface {
	List(ctx context.Context) []models.AnalyticsData
	ListByPlatform(ctx context.Context, platform models.Platform) []models.AnalyticsData
	Set(ctx context.Context, data []models.AnalyticsData)
	DateRange(ctx context.Context) models.DateRange
	SetDateRange(ctx context.Context, dr models.DateRange)
}

type analyticsRepository struct {
	mu        sync.RWMutex
	data      []models.AnalyticsData
	dateRange models.DateRange
}

// NewAnalyticsRepository starts with the 30 days ending on today.
func NewAnalyticsRepository(today models.Date) AnalyticsRepository {
	return &analyticsRepository{
		dateRange: models.DateRange{Start: today.AddDays(-30), End: today},
	}
}

func (r *analyticsRepository) List(ctx context.Context) []models.AnalyticsData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.AnalyticsData, len(r.data))
	copy(out, r.data)
	return out
}

func (r *analyticsRepository) ListByPlatform(ctx context.Context, platform models.Platform) []models.AnalyticsData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.AnalyticsData{}
	for _, d := range r.data {
		if d.Platform == platform {
			out = append(out, d)
		}
	}
	return out
}

func (r *analyticsRepository) Set(ctx context.Context, data []models.AnalyticsData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = slices.Clone(data)
}

func (r *analyticsRepository) DateRange(ctx context.Context) models.DateRange {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dateRange
}

func (r *analyticsRepository) SetDateRange(ctx context.Context, dr models.DateRange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dateRange = dr
}
