package transfer

type ScheduleRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type ContentCreation struct {
	ID           string           `json:"id"`
	Type         string           `json:"type" validate:"required,oneof=image video text carousel reel short"`
	Title        string           `json:"title" validate:"required,max=200"`
	Description  string           `json:"description" validate:"max=2000"`
	Caption      string           `json:"caption" validate:"max=2200"`
	MediaURL     string           `json:"media_url" validate:"omitempty,url"`
	ThumbnailURL string           `json:"thumbnail_url" validate:"omitempty,url"`
	Platforms    []string         `json:"platforms" validate:"required,min=1,dive,oneof=linkedin facebook instagram youtube twitter"`
	Schedule     *ScheduleRequest `json:"schedule" validate:"omitempty"`
}

type MediaUpload struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        string `json:"size"`
}
