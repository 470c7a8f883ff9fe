package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag_DropWithoutDestinationIsNoop(t *testing.T) {
	ctx := context.Background()
	today := models.NewDate(2026, time.October, 12)
	store := seedStore(t, today)
	before := store.List(ctx)

	drag := PickUp("2", CellRef{Date: today.AddDays(1), Time: "14:00"})
	outcome, err := drag.Drop(ctx, store, nil)

	require.NoError(t, err)
	assert.Equal(t, DropCancelled, outcome)
	assert.Equal(t, before, store.List(ctx))
}

func TestDrag_DropRelocates(t *testing.T) {
	ctx := context.Background()
	today := models.NewDate(2026, time.October, 12)
	store := seedStore(t, today)

	source := CellRef{Date: today, Time: "09:00"}
	dest := CellRef{Date: today.AddDays(4), Time: "17:00"}

	outcome, err := PickUp("1", source).Drop(ctx, store, &dest)
	require.NoError(t, err)
	assert.Equal(t, DropRelocated, outcome)

	moved, ok := store.GetByID(ctx, "1")
	require.True(t, ok)
	assert.Contains(t, store.FindBySlot(ctx, dest.Date, dest.Time), *moved)
	assert.NotContains(t, store.FindBySlot(ctx, source.Date, source.Time), *moved)
}

func TestDrag_DropOntoOccupiedCellStacks(t *testing.T) {
	ctx := context.Background()
	today := models.NewDate(2026, time.October, 12)
	store := seedStore(t, today)

	dest := CellRef{Date: today, Time: "09:00"}
	_, err := PickUp("2", CellRef{Date: today.AddDays(1), Time: "14:00"}).Drop(ctx, store, &dest)
	require.NoError(t, err)

	assert.Len(t, store.FindBySlot(ctx, today, "09:00"), 2)
}

func TestDrag_UnknownSlot(t *testing.T) {
	ctx := context.Background()
	today := models.NewDate(2026, time.October, 12)
	store := seedStore(t, today)
	before := store.List(ctx)

	dest := CellRef{Date: today, Time: "12:00"}
	_, err := PickUp("ghost", CellRef{Date: today, Time: "09:00"}).Drop(ctx, store, &dest)

	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Equal(t, before, store.List(ctx))
}
