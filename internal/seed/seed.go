// Package seed loads the mock dataset the dashboard starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

type slotSeed struct {
	ID        string            `yaml:"id"`
	DayOffset int               `yaml:"day_offset"`
	Time      string            `yaml:"time"`
	ContentID string            `yaml:"content_id"`
	Platform  models.Platform   `yaml:"platform"`
	Status    models.SlotStatus `yaml:"status"`
}

type campaignSeed struct {
	models.Campaign `yaml:",inline"`
	StartOffset     int  `yaml:"start_offset"`
	EndOffset       *int `yaml:"end_offset"`
}

type File struct {
	User      models.User            `yaml:"user"`
	Content   []models.ContentItem   `yaml:"content"`
	Slots     []slotSeed             `yaml:"slots"`
	Accounts  []models.SocialAccount `yaml:"accounts"`
	Campaigns []campaignSeed         `yaml:"campaigns"`
	Analytics []models.AnalyticsData `yaml:"analytics"`
}

// Dataset is a seed file resolved against a concrete day.
type Dataset struct {
	User      models.User
	Content   []models.ContentItem
	Slots     []models.ScheduleSlot
	Accounts  []models.SocialAccount
	Campaigns []models.Campaign
	Analytics []models.AnalyticsData
}

type Stores struct {
	Slots     repository.SlotRepository
	Content   repository.ContentRepository
	Accounts  repository.SocialAccountRepository
	Campaigns repository.CampaignRepository
	Analytics repository.AnalyticsRepository
}

// Load reads the seed at path, or the embedded default when path is empty.
func Load(path string) (*File, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// Resolve turns day offsets into dates relative to today and checks every slot
// lands on the grid.
func (f *File) Resolve(today models.Date, now time.Time) (*Dataset, error) {
	ds := &Dataset{
		User:      f.User,
		Accounts:  f.Accounts,
		Analytics: f.Analytics,
	}

	for _, c := range f.Content {
		c.CreatedAt = now
		c.UpdatedAt = now
		if c.Status == "" {
			c.Status = models.ContentStatusDraft
		}
		ds.Content = append(ds.Content, c)
	}

	for _, s := range f.Slots {
		if !s.Platform.Valid() {
			return nil, fmt.Errorf("slot %s: %w: %q", s.ID, models.ErrUnknownPlatform, s.Platform)
		}
		label, err := models.NormalizeTime(s.Time)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", s.ID, err)
		}
		if label != s.Time {
			slog.Debug("seed slot snapped to grid", "id", s.ID, "time", s.Time, "cell", label)
		}
		status := s.Status
		if status == "" {
			status = models.SlotStatusScheduled
		}
		ds.Slots = append(ds.Slots, models.ScheduleSlot{
			ID:        s.ID,
			Date:      today.AddDays(s.DayOffset),
			Time:      label,
			ContentID: s.ContentID,
			Platform:  s.Platform,
			Status:    status,
		})
	}

	for _, c := range f.Campaigns {
		campaign := c.Campaign
		campaign.StartDate = today.AddDays(c.StartOffset)
		if c.EndOffset != nil {
			end := today.AddDays(*c.EndOffset)
			campaign.EndDate = &end
		}
		campaign.CreatedAt = now
		ds.Campaigns = append(ds.Campaigns, campaign)
	}

	for i, c := range ds.Content {
		for _, s := range ds.Slots {
			if s.ContentID == c.ID {
				d := s.Date
				ds.Content[i].ScheduledDate = &d
				break
			}
		}
	}
	return ds, nil
}

// Apply replaces the contents of every store with the dataset.
func (ds *Dataset) Apply(ctx context.Context, st Stores) {
	st.Slots.Set(ctx, ds.Slots)
	st.Content.Set(ctx, ds.Content)
	st.Accounts.Set(ctx, ds.Accounts)
	st.Campaigns.Set(ctx, ds.Campaigns)
	st.Analytics.Set(ctx, ds.Analytics)
}
