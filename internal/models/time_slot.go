package models

import (
	"errors"
	"fmt"
	"time"
)

const TimeLayout = "15:04"

const (
	firstSlotHour = 9
	lastSlotHour  = 18
)

var ErrInvalidTimeSlot = errors.New("invalid time slot")

// TimeSlots are the hourly labels of the calendar grid, in display order.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// NormalizeTime floors an "HH:MM" label to its hourly grid tick. Labels outside
// 09:00-18:59 have no row on the grid and are rejected.
func NormalizeTime(label string) (string, error) {
	t, err := time.Parse(TimeLayout, label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeSlot, label)
	}
	if t.Hour() < firstSlotHour || t.Hour() > lastSlotHour {
		return "", fmt.Errorf("%w: %q is outside %s-%s", ErrInvalidTimeSlot, label, TimeSlots[0], TimeSlots[len(TimeSlots)-1])
	}
	return fmt.Sprintf("%02d:00", t.Hour()), nil
}
