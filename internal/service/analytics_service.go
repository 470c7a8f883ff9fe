package service

import (
	"context"

	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
)

type AnalyticsQuery struct {
	Platform string
	Start    string
	End      string
}

type AnalyticsReport struct {
	DateRange      models.DateRange       `json:"date_range"`
	Data           []models.AnalyticsData `json:"data"`
	Totals         models.Metrics         `json:"totals"`
	EngagementRate string                 `json:"engagement_rate"`
}

type AnalyticsService interface {
	Report(ctx context.Context, q AnalyticsQuery) (*AnalyticsReport, error)
}

type analyticsService struct {
	an repository.AnalyticsRepository
}

func NewAnalyticsService(an repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{an: an}
}

// Report filters by platform when one is given. A start or end in the query
// replaces the stored range; the other end keeps its stored value.
func (s *analyticsService) Report(ctx context.Context, q AnalyticsQuery) (*AnalyticsReport, error) {
	dr := s.an.DateRange(ctx)
	if q.Start != "" || q.End != "" {
		if q.Start != "" {
			start, err := models.ParseDate(q.Start)
			if err != nil {
				return nil, fieldError("start", "must be a date like 2006-01-02")
			}
			dr.Start = start
		}
		if q.End != "" {
			end, err := models.ParseDate(q.End)
			if err != nil {
				return nil, fieldError("end", "must be a date like 2006-01-02")
			}
			dr.End = end
		}
		if dr.End.Before(dr.Start) {
			return nil, fieldError("end", "must not be before start")
		}
		s.an.SetDateRange(ctx, dr)
	}

	var data []models.AnalyticsData
	if q.Platform != "" {
		p, err := models.ParsePlatform(q.Platform)
		if err != nil {
			return nil, err
		}
		data = s.an.ListByPlatform(ctx, p)
	} else {
		data = s.an.List(ctx)
	}

	report := &AnalyticsReport{DateRange: dr, Data: data}
	for _, d := range data {
		report.Totals.Impressions += d.Metrics.Impressions
		report.Totals.Engagement += d.Metrics.Engagement
		report.Totals.Clicks += d.Metrics.Clicks
		report.Totals.Shares += d.Metrics.Shares
	}
	report.EngagementRate = EngagementRate(report.Totals.Engagement, report.Totals.Impressions)
	return report, nil
}
