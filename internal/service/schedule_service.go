package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/fluxora/internal/calendar"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Clock is the source of "now" for services that depend on the current day.
type Clock func() time.Time

type ScheduleService interface {
	Today() models.Date
	Week(ctx context.Context, reference *models.Date) calendar.Grid
	List(ctx context.Context) []models.ScheduleSlot
	Create(ctx context.Context, sc *transfer.SlotCreation) (*models.ScheduleSlot, error)
	Remove(ctx context.Context, id string) error
	DragEnd(ctx context.Context, de *transfer.DragEnd) (calendar.DropOutcome, error)
}

type scheduleService struct {
	sr  repository.SlotRepository
	cr  repository.ContentRepository
	m   *metrics.Metrics
	now Clock
	loc *time.Location
}

func NewScheduleService(
	sr repository.SlotRepository,
	cr repository.ContentRepository,
	m *metrics.Metrics,
	now Clock,
	loc *time.Location) ScheduleService {
	return &scheduleService{
		sr:  sr,
		cr:  cr,
		m:   m,
		now: now,
		loc: loc,
	}
}

func (s *scheduleService) Today() models.Date {
	return calendar.Today(s.now(), s.loc)
}

// Week builds the grid for the week containing reference, or the current week.
func (s *scheduleService) Week(ctx context.Context, reference *models.Date) calendar.Grid {
	today := s.Today()
	ref := today
	if reference != nil && !reference.IsZero() {
		ref = *reference
	}
	return calendar.BuildGrid(ctx, calendar.WeekOf(ref), today, s.sr)
}

func (s *scheduleService) List(ctx context.Context) []models.ScheduleSlot {
	return s.sr.List(ctx)
}

func (s *scheduleService) Create(ctx context.Context, sc *transfer.SlotCreation) (*models.ScheduleSlot, error) {
	if sc == nil {
		err := errors.New("slot creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if err := validateStruct(sc); err != nil {
		return nil, err
	}

	platform, err := models.ParsePlatform(sc.Platform)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	date, err := models.ParseDate(sc.Date)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	label, err := models.NormalizeTime(sc.Time)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if sc.ContentID != "" {
		if _, ok := s.cr.GetByID(ctx, sc.ContentID); !ok {
			slog.Info("slot references unknown content", "content_id", sc.ContentID)
		}
	}

	slot, err := newSlot(date, label, platform, sc.ContentID)
	if err != nil {
		return nil, err
	}
	s.sr.Create(ctx, slot)
	return &slot, nil
}

func (s *scheduleService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fieldError("id", "is required")
	}
	if !s.sr.Remove(ctx, id) {
		return fmt.Errorf("%w: %s", calendar.ErrSlotNotFound, id)
	}
	return nil
}

// DragEnd applies a finished drag gesture.
func (s *scheduleService) DragEnd(ctx context.Context, de *transfer.DragEnd) (calendar.DropOutcome, error) {
	if de == nil {
		err := errors.New("drag data is nil")
		slog.Error(err.Error())
		return "", err
	}
	if err := validateStruct(de); err != nil {
		return "", err
	}

	var source calendar.CellRef
	if de.Source != "" {
		ref, err := calendar.ParseCellID(de.Source)
		if err != nil {
			slog.Info(err.Error())
			return "", err
		}
		source = ref
	}

	var destination *calendar.CellRef
	if de.Destination != nil && *de.Destination != "" {
		ref, err := calendar.ParseCellID(*de.Destination)
		if err != nil {
			slog.Info(err.Error())
			return "", err
		}
		destination = &ref
	}

	outcome, err := calendar.PickUp(de.DraggableID, source).Drop(ctx, s.sr, destination)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	switch outcome {
	case calendar.DropCancelled:
		s.m.DragsCancelled.Inc()
	case calendar.DropRelocated:
		s.m.SlotsRelocated.Inc()
		slog.Debug("slot relocated", "id", de.DraggableID, "from", de.Source, "to", destination.ID())
	}
	return outcome, nil
}

func newSlot(date models.Date, label string, platform models.Platform, contentID string) (models.ScheduleSlot, error) {
	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return models.ScheduleSlot{}, err
	}
	return models.ScheduleSlot{
		ID:        id,
		Date:      date,
		Time:      label,
		ContentID: contentID,
		Platform:  platform,
		Status:    models.SlotStatusScheduled,
	}, nil
}
