package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
)

// PublishSweepJob stands in for the platform publishers: once a scheduled post's
// time has passed it is marked published, together with its content.
type PublishSweepJob struct {
	sr  repository.SlotRepository
	cr  repository.ContentRepository
	m   *metrics.Metrics
	now func() time.Time
	loc *time.Location
}

func NewPublishSweepJob(
	sr repository.SlotRepository,
	cr repository.ContentRepository,
	m *metrics.Metrics,
	now func() time.Time,
	loc *time.Location) *PublishSweepJob {
	return &PublishSweepJob{
		sr:  sr,
		cr:  cr,
		m:   m,
		now: now,
		loc: loc,
	}
}

// Sweep returns how many slots it published.
func (j *PublishSweepJob) Sweep(ctx context.Context) int {
	now := j.now()
	published := 0

	for _, slot := range j.sr.List(ctx) {
		if slot.Status != models.SlotStatusScheduled {
			continue
		}
		at, err := slot.Date.At(slot.Time, j.loc)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		if at.After(now) {
			continue
		}
		if !j.sr.UpdateStatus(ctx, slot.ID, models.SlotStatusPublished) {
			continue
		}
		published++
		j.publishContent(ctx, slot.ContentID, now)
	}

	if published > 0 {
		j.m.SlotsPublished.Add(float64(published))
		slog.Info("published scheduled posts", "count", published)
	}
	return published
}

// Run is the cron entry point.
func (j *PublishSweepJob) Run() {
	j.Sweep(context.Background())
}

func (j *PublishSweepJob) publishContent(ctx context.Context, contentID string, now time.Time) {
	if contentID == "" {
		return
	}
	item, ok := j.cr.GetByID(ctx, contentID)
	if !ok || item.Status != models.ContentStatusScheduled {
		return
	}
	item.Status = models.ContentStatusPublished
	item.UpdatedAt = now
	j.cr.Update(ctx, *item)
}
