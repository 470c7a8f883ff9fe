package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheshrc27/fluxora/internal/models"
)

var ErrSlotNotFound = errors.New("scheduled post not found")

// Relocator is the write side of the slot store used on drop.
type Relocator interface {
	Relocate(ctx context.Context, id string, date models.Date, time string) bool
}

type DropOutcome string

const (
	DropCancelled DropOutcome = "cancelled"
	DropRelocated DropOutcome = "relocated"
)

// Drag is a post that has been picked up from a cell and not yet dropped.
type Drag struct {
	SlotID string  `json:"draggable_id"`
	Source CellRef `json:"source"`
}

func PickUp(slotID string, source CellRef) Drag {
	return Drag{SlotID: slotID, Source: source}
}

// Drop finishes the gesture. A nil destination means the post was released outside
// the grid: nothing changes. Occupied destinations are accepted; the cell stacks.
func (d Drag) Drop(ctx context.Context, store Relocator, destination *CellRef) (DropOutcome, error) {
	if destination == nil {
		return DropCancelled, nil
	}
	if !store.Relocate(ctx, d.SlotID, destination.Date, destination.Time) {
		return "", fmt.Errorf("%w: %s", ErrSlotNotFound, d.SlotID)
	}
	return DropRelocated, nil
}
