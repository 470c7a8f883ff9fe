package models

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusScheduled SlotStatus = "scheduled"
	SlotStatusPublished SlotStatus = "published"
)

// ScheduleSlot is one post placed on the calendar. Several slots may share the
// same date and time; the grid stacks them.
type ScheduleSlot struct {
	ID        string     `json:"id"`
	Date      Date       `json:"date"`
	Time      string     `json:"time"`
	ContentID string     `json:"content_id,omitempty"`
	Platform  Platform   `json:"platform"`
	Status    SlotStatus `json:"status"`
}

func (s ScheduleSlot) Key() string { return s.ID }

// InCell reports whether the slot sits in the (date, time) cell.
func (s ScheduleSlot) InCell(date Date, time string) bool {
	return s.Date == date && s.Time == time
}
