package transfer

type SlotCreation struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Platform  string `json:"platform" validate:"required"`
	ContentID string `json:"content_id"`
}

// DragEnd is what the client reports when a drag gesture finishes. Source and
// Destination are cell ids ("2026-10-12T09:00"); a nil Destination means the post
// was released outside the grid.
type DragEnd struct {
	DraggableID string  `json:"draggable_id" validate:"required"`
	Source      string  `json:"source"`
	Destination *string `json:"destination"`
}

// ExportPayload is the body of the background calendar export task.
type ExportPayload struct {
	ExportID string `json:"export_id"`
	Week     string `json:"week"`
}
