package calendar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maheshrc27/fluxora/internal/models"
)

var ErrInvalidCell = errors.New("invalid calendar cell")

// CellRef addresses one (day, time) cell of the grid.
type CellRef struct {
	Date models.Date `json:"date"`
	Time string      `json:"time"`
}

// ID encodes the cell as "2006-01-02T15:04", the droppable id a client echoes back on drop.
func (c CellRef) ID() string {
	return c.Date.String() + "T" + c.Time
}

// ParseCellID decodes a droppable id. The time part must be one of the grid labels.
func ParseCellID(id string) (CellRef, error) {
	datePart, timePart, ok := strings.Cut(id, "T")
	if !ok {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidCell, id)
	}
	date, err := models.ParseDate(datePart)
	if err != nil {
		return CellRef{}, fmt.Errorf("%w: %w", ErrInvalidCell, err)
	}
	if !isTimeSlot(timePart) {
		return CellRef{}, fmt.Errorf("%w: %q is not a grid time", ErrInvalidCell, timePart)
	}
	return CellRef{Date: date, Time: timePart}, nil
}

func isTimeSlot(label string) bool {
	for _, t := range models.TimeSlots {
		if t == label {
			return true
		}
	}
	return false
}
