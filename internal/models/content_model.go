package models

import "time"

type ContentType string

const (
	ContentTypeImage    ContentType = "image"
	ContentTypeVideo    ContentType = "video"
	ContentTypeText     ContentType = "text"
	ContentTypeCarousel ContentType = "carousel"
	ContentTypeReel     ContentType = "reel"
	ContentTypeShort    ContentType = "short"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusFailed    ContentStatus = "failed"
)

type ContentItem struct {
	ID            string        `json:"id" yaml:"id"`
	Type          ContentType   `json:"type" yaml:"type"`
	Title         string        `json:"title" yaml:"title"`
	Description   string        `json:"description,omitempty" yaml:"description"`
	Caption       string        `json:"caption,omitempty" yaml:"caption"`
	MediaURL      string        `json:"media_url,omitempty" yaml:"media_url"`
	ThumbnailURL  string        `json:"thumbnail_url,omitempty" yaml:"thumbnail_url"`
	Platforms     []Platform    `json:"platforms" yaml:"platforms"`
	ScheduledDate *Date         `json:"scheduled_date,omitempty" yaml:"-"`
	Status        ContentStatus `json:"status" yaml:"status"`
	CreatedAt     time.Time     `json:"created_at" yaml:"-"`
	UpdatedAt     time.Time     `json:"updated_at" yaml:"-"`
}

func (c ContentItem) Key() string { return c.ID }

// Editable reports whether the creation form may still change the item.
func (c ContentItem) Editable() bool {
	return c.Status == ContentStatusDraft || c.Status == ContentStatusScheduled
}
