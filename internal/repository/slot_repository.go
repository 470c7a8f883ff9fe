package repository

import (
	"context"

	"github.com/maheshrc27/fluxora/internal/models"
)

type SlotRepository interface {
	List(ctx context.Context) []models.ScheduleSlot
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, bool)
	FindBySlot(ctx context.Context, date models.Date, time string) []models.ScheduleSlot
	ListBetween(ctx context.Context, from, to models.Date) []models.ScheduleSlot
	ListByContentID(ctx context.Context, contentID string) []models.ScheduleSlot
	Create(ctx context.Context, slot models.ScheduleSlot)
	Relocate(ctx context.Context, id string, date models.Date, time string) bool
	UpdateStatus(ctx context.Context, id string, status models.SlotStatus) bool
	Remove(ctx context.Context, id string) bool
	Set(ctx context.Context, slots []models.ScheduleSlot)
}

type slotRepository struct {
	slots table[models.ScheduleSlot]
}

func NewSlotRepository() SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) List(ctx context.Context) []models.ScheduleSlot {
	return r.slots.snapshot()
}

func (r *slotRepository) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, bool) {
	slot, ok := r.slots.get(id)
	if !ok {
		return nil, false
	}
	return &slot, true
}

// FindBySlot matches on calendar day and exact time label. A miss is an empty result.
func (r *slotRepository) FindBySlot(ctx context.Context, date models.Date, time string) []models.ScheduleSlot {
	return r.slots.filter(func(s models.ScheduleSlot) bool {
		return s.InCell(date, time)
	})
}

// ListBetween returns slots dated from..to inclusive.
func (r *slotRepository) ListBetween(ctx context.Context, from, to models.Date) []models.ScheduleSlot {
	return r.slots.filter(func(s models.ScheduleSlot) bool {
		return !s.Date.Before(from) && !s.Date.After(to)
	})
}

func (r *slotRepository) ListByContentID(ctx context.Context, contentID string) []models.ScheduleSlot {
	return r.slots.filter(func(s models.ScheduleSlot) bool {
		return contentID != "" && s.ContentID == contentID
	})
}

func (r *slotRepository) Create(ctx context.Context, slot models.ScheduleSlot) {
	r.slots.add(slot)
}

// Relocate moves the slot to another cell without checking whether the cell is
// occupied. It reports false when the id is unknown and leaves the store untouched.
func (r *slotRepository) Relocate(ctx context.Context, id string, date models.Date, time string) bool {
	return r.slots.update(id, func(s models.ScheduleSlot) models.ScheduleSlot {
		s.Date = date
		s.Time = time
		return s
	})
}

func (r *slotRepository) UpdateStatus(ctx context.Context, id string, status models.SlotStatus) bool {
	return r.slots.update(id, func(s models.ScheduleSlot) models.ScheduleSlot {
		s.Status = status
		return s
	})
}

func (r *slotRepository) Remove(ctx context.Context, id string) bool {
	return r.slots.remove(id)
}

func (r *slotRepository) Set(ctx context.Context, slots []models.ScheduleSlot) {
	r.slots.set(slots)
}
