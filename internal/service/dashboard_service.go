package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
)

const UpcomingLimit = 5

type Stat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpcomingPost struct {
	models.ScheduleSlot
	Title string    `json:"title,omitempty"`
	At    time.Time `json:"at"`
	In    string    `json:"in"`
}

type Dashboard struct {
	Greeting string         `json:"greeting"`
	Stats    []Stat         `json:"stats"`
	Upcoming []UpcomingPost `json:"upcoming"`
}

type DashboardService interface {
	Summary(ctx context.Context, displayName string) Dashboard
	Upcoming(ctx context.Context, limit int) []UpcomingPost
}

type dashboardService struct {
	sr  repository.SlotRepository
	cr  repository.ContentRepository
	ac  repository.SocialAccountRepository
	an  repository.AnalyticsRepository
	now Clock
	loc *time.Location
}

func NewDashboardService(
	sr repository.SlotRepository,
	cr repository.ContentRepository,
	ac repository.SocialAccountRepository,
	an repository.AnalyticsRepository,
	now Clock,
	loc *time.Location) DashboardService {
	return &dashboardService{
		sr:  sr,
		cr:  cr,
		ac:  ac,
		an:  an,
		now: now,
		loc: loc,
	}
}

func (s *dashboardService) Summary(ctx context.Context, displayName string) Dashboard {
	scheduled := 0
	for _, slot := range s.sr.List(ctx) {
		if slot.Status == models.SlotStatusScheduled {
			scheduled++
		}
	}

	var impressions, engagement int
	for _, d := range s.an.List(ctx) {
		impressions += d.Metrics.Impressions
		engagement += d.Metrics.Engagement
	}

	return Dashboard{
		Greeting: greeting(displayName),
		Stats: []Stat{
			{Name: "Posts Scheduled", Value: humanize.Comma(int64(scheduled))},
			{Name: "Total Reach", Value: humanize.Comma(int64(impressions))},
			{Name: "Engagement Rate", Value: EngagementRate(engagement, impressions)},
			{Name: "Connected Accounts", Value: humanize.Comma(int64(len(s.ac.ListConnected(ctx))))},
		},
		Upcoming: s.Upcoming(ctx, UpcomingLimit),
	}
}

// Upcoming lists scheduled posts that have not started yet, soonest first.
func (s *dashboardService) Upcoming(ctx context.Context, limit int) []UpcomingPost {
	now := s.now()
	out := []UpcomingPost{}
	for _, slot := range s.sr.List(ctx) {
		if slot.Status != models.SlotStatusScheduled {
			continue
		}
		at, err := slot.Date.At(slot.Time, s.loc)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		if at.Before(now) {
			continue
		}
		post := UpcomingPost{ScheduleSlot: slot, At: at, In: humanize.RelTime(at, now, "ago", "from now")}
		if item, ok := s.cr.GetByID(ctx, slot.ContentID); ok {
			post.Title = item.Title
		}
		out = append(out, post)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EngagementRate is engagement over impressions as a one-decimal percentage.
func EngagementRate(engagement, impressions int) string {
	if impressions == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(engagement)*100/float64(impressions))
}

func greeting(displayName string) string {
	first := strings.Fields(displayName)
	if len(first) == 0 {
		return "Welcome back!"
	}
	return fmt.Sprintf("Welcome back, %s!", first[0])
}
