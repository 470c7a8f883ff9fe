package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

const (
	ExportModeQueued   = "queued"
	ExportModeDownload = "download"
)

// ExportEnqueuer hands an export to the background worker.
type ExportEnqueuer interface {
	EnqueueExport(ctx context.Context, payload transfer.ExportPayload) error
}

type ExportedPost struct {
	ID           string            `json:"id"`
	Date         models.Date       `json:"date"`
	Time         string            `json:"time"`
	Platform     models.Platform   `json:"platform"`
	Status       models.SlotStatus `json:"status"`
	ContentID    string            `json:"content_id,omitempty"`
	ContentTitle string            `json:"content_title,omitempty"`
}

type CalendarExport struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Label       string         `json:"label"`
	WeekStart   models.Date    `json:"week_start"`
	WeekEnd     models.Date    `json:"week_end"`
	Summary     string         `json:"summary"`
	Posts       []ExportedPost `json:"posts"`
}

type ExportResult struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"-"`
	Body     []byte `json:"-"`
}

type ExportService interface {
	Build(ctx context.Context, exportID string, reference models.Date) (*CalendarExport, error)
	Export(ctx context.Context, reference *models.Date) (*ExportResult, error)
	Store(ctx context.Context, payload transfer.ExportPayload) (string, error)
}

type exportService struct {
	ss      ScheduleService
	cr      repository.ContentRepository
	storage ObjectStorage
	queue   ExportEnqueuer
	m       *metrics.Metrics
	now     Clock
}

// NewExportService runs exports in the background only when both queue and
// storage are available; otherwise exports are returned inline.
func NewExportService(
	ss ScheduleService,
	cr repository.ContentRepository,
	storage ObjectStorage,
	queue ExportEnqueuer,
	m *metrics.Metrics,
	now Clock) ExportService {
	return &exportService{
		ss:      ss,
		cr:      cr,
		storage: storage,
		queue:   queue,
		m:       m,
		now:     now,
	}
}

func exportKey(id string) string {
	return fmt.Sprintf("exports/%s.json", id)
}

func (s *exportService) Build(ctx context.Context, exportID string, reference models.Date) (*CalendarExport, error) {
	grid := s.ss.Week(ctx, &reference)

	doc := &CalendarExport{
		ID:          exportID,
		GeneratedAt: s.now().UTC(),
		Label:       grid.Label,
		WeekStart:   grid.Start,
		WeekEnd:     grid.End(),
		Summary:     grid.Footer(),
		Posts:       []ExportedPost{},
	}
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			for _, post := range cell.Posts {
				ep := ExportedPost{
					ID:        post.ID,
					Date:      post.Date,
					Time:      post.Time,
					Platform:  post.Platform,
					Status:    post.Status,
					ContentID: post.ContentID,
				}
				if item, ok := s.cr.GetByID(ctx, post.ContentID); ok {
					ep.ContentTitle = item.Title
				}
				doc.Posts = append(doc.Posts, ep)
			}
		}
	}
	return doc, nil
}

func (s *exportService) Export(ctx context.Context, reference *models.Date) (*ExportResult, error) {
	ref := s.ss.Today()
	if reference != nil && !reference.IsZero() {
		ref = *reference
	}
	id := uuid.NewString()

	if s.queue != nil && s.storage != nil {
		payload := transfer.ExportPayload{ExportID: id, Week: ref.String()}
		if err := s.queue.EnqueueExport(ctx, payload); err != nil {
			slog.Info(err.Error())
			return nil, fmt.Errorf("enqueue export: %w", err)
		}
		s.m.ExportsCreated.WithLabelValues(ExportModeQueued).Inc()
		return &ExportResult{ID: id, Mode: ExportModeQueued, URL: s.storage.URL(exportKey(id))}, nil
	}

	doc, err := s.Build(ctx, id, ref)
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	s.m.ExportsCreated.WithLabelValues(ExportModeDownload).Inc()
	return &ExportResult{
		ID:       id,
		Mode:     ExportModeDownload,
		Filename: fmt.Sprintf("calendar-%s.json", doc.WeekStart),
		Body:     body,
	}, nil
}

// Store builds the export described by payload and uploads it.
func (s *exportService) Store(ctx context.Context, payload transfer.ExportPayload) (string, error) {
	if s.storage == nil {
		return "", ErrStorageNotConfigured
	}
	ref, err := models.ParseDate(payload.Week)
	if err != nil {
		return "", err
	}

	doc, err := s.Build(ctx, payload.ExportID, ref)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return s.storage.Put(ctx, exportKey(payload.ExportID), body, "application/json")
}
