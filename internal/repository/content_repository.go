package repository

import (
	"context"

	"github.com/maheshrc27/fluxora/internal/models"
)

type ContentRepository interface {
	List(ctx context.Context) []models.ContentItem
	GetByID(ctx context.Context, id string) (*models.ContentItem, bool)
	Create(ctx context.Context, item models.ContentItem)
	Update(ctx context.Context, item models.ContentItem) bool
	Remove(ctx context.Context, id string) bool
	Set(ctx context.Context, items []models.ContentItem)
}

type contentRepository struct {
	items table[models.ContentItem]
}

func NewContentRepository() ContentRepository {
	return &contentRepository{}
}

func (r *contentRepository) List(ctx context.Context) []models.ContentItem {
	return r.items.snapshot()
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, bool) {
	item, ok := r.items.get(id)
	if !ok {
		return nil, false
	}
	return &item, true
}

func (r *contentRepository) Create(ctx context.Context, item models.ContentItem) {
	r.items.add(item)
}

func (r *contentRepository) Update(ctx context.Context, item models.ContentItem) bool {
	return r.items.update(item.ID, func(models.ContentItem) models.ContentItem {
		return item
	})
}

func (r *contentRepository) Remove(ctx context.Context, id string) bool {
	return r.items.remove(id)
}

func (r *contentRepository) Set(ctx context.Context, items []models.ContentItem) {
	r.items.set(items)
}
