package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/preview"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

type PreviewService interface {
	Render(ctx context.Context, pr *transfer.PreviewRequest) ([]preview.Preview, error)
	RenderHTML(ctx context.Context, pr *transfer.PreviewRequest) (string, error)
}

type previewService struct {
	m *metrics.Metrics
}

func NewPreviewService(m *metrics.Metrics) PreviewService {
	return &previewService{m: m}
}

// Render previews the draft on every requested platform. A single Platform and
// the Platforms list are merged, in that order.
func (s *previewService) Render(ctx context.Context, pr *transfer.PreviewRequest) ([]preview.Preview, error) {
	platforms, content, err := previewInput(pr)
	if err != nil {
		return nil, err
	}

	out, err := preview.RenderAll(platforms, content)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	for _, p := range out {
		s.m.PreviewsRendered.WithLabelValues(string(p.Platform)).Inc()
	}
	return out, nil
}

func (s *previewService) RenderHTML(ctx context.Context, pr *transfer.PreviewRequest) (string, error) {
	previews, err := s.Render(ctx, pr)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range previews {
		fragment, err := p.HTML()
		if err != nil {
			slog.Error(err.Error())
			return "", err
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}

func previewInput(pr *transfer.PreviewRequest) ([]models.Platform, preview.Content, error) {
	if pr == nil {
		return nil, preview.Content{}, errors.New("preview request is nil")
	}

	names := pr.Platforms
	if pr.Platform != "" {
		names = append([]string{pr.Platform}, names...)
	}
	if len(names) == 0 {
		return nil, preview.Content{}, fieldError("platforms", "select at least one")
	}

	seen := make(map[models.Platform]bool, len(names))
	platforms := make([]models.Platform, 0, len(names))
	for _, name := range names {
		p, err := models.ParsePlatform(name)
		if err != nil {
			return nil, preview.Content{}, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}

	return platforms, preview.Content{
		Type:     models.ContentType(pr.Type),
		Caption:  pr.Caption,
		MediaURL: pr.MediaURL,
	}, nil
}
