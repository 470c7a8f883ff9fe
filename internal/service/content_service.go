package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const MaxMediaSize = 10 << 20

var (
	ErrContentNotFound    = errors.New("content not found")
	ErrContentNotEditable = errors.New("content can no longer be edited")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrMediaTooLarge      = errors.New("media file too large")
)

var allowedMediaTypes = map[string]struct{}{
	"png": {}, "jpg": {}, "gif": {}, "mp4": {}, "mov": {},
}

type ContentService interface {
	List(ctx context.Context) []models.ContentItem
	Get(ctx context.Context, id string) (*models.ContentItem, error)
	Create(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error)
	Update(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error)
	Remove(ctx context.Context, id string) error
	UploadMedia(ctx context.Context, file *multipart.FileHeader) (*transfer.MediaUpload, error)
}

type contentService struct {
	cr      repository.ContentRepository
	sr      repository.SlotRepository
	storage ObjectStorage
	now     Clock
}

// NewContentService wires the creation form. storage may be nil, in which case
// media uploads fail with ErrStorageNotConfigured.
func NewContentService(
	cr repository.ContentRepository,
	sr repository.SlotRepository,
	storage ObjectStorage,
	now Clock) ContentService {
	return &contentService{
		cr:      cr,
		sr:      sr,
		storage: storage,
		now:     now,
	}
}

func (s *contentService) List(ctx context.Context) []models.ContentItem {
	return s.cr.List(ctx)
}

func (s *contentService) Get(ctx context.Context, id string) (*models.ContentItem, error) {
	item, ok := s.cr.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, id)
	}
	return item, nil
}

func (s *contentService) Create(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error) {
	if cc == nil {
		err := errors.New("content creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if err := validateStruct(cc); err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	now := s.now()
	item := models.ContentItem{
		ID:        id,
		Status:    models.ContentStatusDraft,
		CreatedAt: now,
	}
	applyCreation(&item, cc, now)

	slots, err := s.scheduleSlots(cc, item.ID)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		markScheduled(&item, slots[0].Date)
	}

	s.cr.Create(ctx, item)
	for _, slot := range slots {
		s.sr.Create(ctx, slot)
	}
	return &item, nil
}

func (s *contentService) Update(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error) {
	if cc == nil || cc.ID == "" {
		return nil, fieldError("id", "is required")
	}
	if err := validateStruct(cc); err != nil {
		return nil, err
	}

	current, ok := s.cr.GetByID(ctx, cc.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, cc.ID)
	}
	if !current.Editable() {
		return nil, fmt.Errorf("%w: %s is %s", ErrContentNotEditable, cc.ID, current.Status)
	}

	item := *current
	applyCreation(&item, cc, s.now())

	slots, err := s.scheduleSlots(cc, item.ID)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		markScheduled(&item, slots[0].Date)
	}

	if !s.cr.Update(ctx, item) {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, cc.ID)
	}
	if len(slots) > 0 {
		// Rescheduling replaces the posts placed by the previous submit.
		for _, old := range s.sr.ListByContentID(ctx, item.ID) {
			s.sr.Remove(ctx, old.ID)
		}
	}
	for _, slot := range slots {
		s.sr.Create(ctx, slot)
	}
	return &item, nil
}

// Remove deletes the item. Slots pointing at it stay on the calendar; their
// content reference simply stops resolving.
func (s *contentService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fieldError("id", "is required")
	}
	if !s.cr.Remove(ctx, id) {
		return fmt.Errorf("%w: %s", ErrContentNotFound, id)
	}
	return nil
}

func (s *contentService) UploadMedia(ctx context.Context, file *multipart.FileHeader) (*transfer.MediaUpload, error) {
	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}
	if file == nil {
		return nil, fieldError("file", "is required")
	}
	if file.Size > MaxMediaSize {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrMediaTooLarge,
			humanize.IBytes(uint64(file.Size)), humanize.IBytes(MaxMediaSize))
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(f, MaxMediaSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	if len(fileBytes) > MaxMediaSize {
		return nil, fmt.Errorf("%w: exceeds %s", ErrMediaTooLarge, humanize.IBytes(MaxMediaSize))
	}

	kind, err := filetype.Match(fileBytes)
	if err != nil || kind == types.Unknown {
		return nil, fmt.Errorf("%w: unrecognised file", ErrUnsupportedMedia)
	}
	if _, ok := allowedMediaTypes[kind.Extension]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, kind.Extension)
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	key := fmt.Sprintf("media/%s.%s", id, kind.Extension)

	url, err := s.storage.Put(ctx, key, fileBytes, kind.MIME.Value)
	if err != nil {
		return nil, err
	}

	return &transfer.MediaUpload{
		Key:         key,
		URL:         url,
		ContentType: kind.MIME.Value,
		Size:        humanize.IBytes(uint64(len(fileBytes))),
	}, nil
}

func (s *contentService) scheduleSlots(cc *transfer.ContentCreation, contentID string) ([]models.ScheduleSlot, error) {
	if cc.Schedule == nil {
		return nil, nil
	}
	date, err := models.ParseDate(cc.Schedule.Date)
	if err != nil {
		return nil, fieldError("schedule.date", "must be a date like 2006-01-02")
	}
	label, err := models.NormalizeTime(cc.Schedule.Time)
	if err != nil {
		return nil, fieldError("schedule.time", fmt.Sprintf("must be between %s and %s",
			models.TimeSlots[0], models.TimeSlots[len(models.TimeSlots)-1]))
	}

	slots := make([]models.ScheduleSlot, 0, len(cc.Platforms))
	for _, p := range cc.Platforms {
		slot, err := newSlot(date, label, models.Platform(p), contentID)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func applyCreation(item *models.ContentItem, cc *transfer.ContentCreation, now time.Time) {
	item.Type = models.ContentType(cc.Type)
	item.Title = cc.Title
	item.Description = cc.Description
	item.Caption = cc.Caption
	item.MediaURL = cc.MediaURL
	item.ThumbnailURL = cc.ThumbnailURL
	item.Platforms = make([]models.Platform, len(cc.Platforms))
	for i, p := range cc.Platforms {
		item.Platforms[i] = models.Platform(p)
	}
	item.UpdatedAt = now
}

func markScheduled(item *models.ContentItem, date models.Date) {
	d := date
	item.ScheduledDate = &d
	item.Status = models.ContentStatusScheduled
}
