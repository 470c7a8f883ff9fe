// Package calendar builds the weekly scheduling grid and the drag protocol that
// moves posts between its cells.
package calendar

import (
	"fmt"
	"time"

	"github.com/maheshrc27/fluxora/internal/models"
)

const DaysPerWeek = 7

// Week is the Monday-first week containing Reference.
type Week struct {
	Reference models.Date   `json:"reference"`
	Start     models.Date   `json:"week_start"`
	Days      []models.Date `json:"week_days"`
}

func WeekOf(reference models.Date) Week {
	// Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(reference.Weekday()) + 6) % DaysPerWeek
	start := reference.AddDays(-offset)

	days := make([]models.Date, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return Week{Reference: reference, Start: start, Days: days}
}

func (w Week) Previous() Week {
	return WeekOf(w.Reference.AddDays(-DaysPerWeek))
}

func (w Week) Next() Week {
	return WeekOf(w.Reference.AddDays(DaysPerWeek))
}

func (w Week) End() models.Date {
	return w.Start.AddDays(DaysPerWeek - 1)
}

func (w Week) Contains(d models.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End())
}

// Label renders the header range, e.g. "Oct 12 - Oct 18, 2026".
func (w Week) Label() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("Jan 2"), w.End().Format("Jan 2, 2006"))
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) models.Date {
	if loc == nil {
		loc = time.UTC
	}
	return models.DateOf(now.In(loc))
}
