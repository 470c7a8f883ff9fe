package calendar

import (
	"context"
	"fmt"

	"github.com/maheshrc27/fluxora/internal/models"
)

// SlotFinder is the read side of the slot store the grid needs.
type SlotFinder interface {
	FindBySlot(ctx context.Context, date models.Date, time string) []models.ScheduleSlot
}

type DayHeader struct {
	Date    models.Date `json:"date"`
	Weekday string      `json:"weekday"`
	Day     int         `json:"day"`
	IsToday bool        `json:"is_today"`
}

type Cell struct {
	ID      string                `json:"id"`
	Date    models.Date           `json:"date"`
	Time    string                `json:"time"`
	IsToday bool                  `json:"is_today"`
	Posts   []models.ScheduleSlot `json:"posts"`
}

type Row struct {
	Time  string `json:"time"`
	Cells []Cell `json:"cells"`
}

type LegendEntry struct {
	Platform models.Platform `json:"platform"`
	Color    string          `json:"color"`
}

type Grid struct {
	Week
	Label     string        `json:"label"`
	Today     models.Date   `json:"today"`
	Headers   []DayHeader   `json:"headers"`
	TimeSlots []string      `json:"time_slots"`
	Rows      []Row         `json:"rows"`
	Legend    []LegendEntry `json:"legend"`
	Previous  models.Date   `json:"previous_week"`
	Next      models.Date   `json:"next_week"`
}

// BuildGrid paints the week. today is taken per call so the highlight follows the
// clock across midnight.
func BuildGrid(ctx context.Context, week Week, today models.Date, finder SlotFinder) Grid {
	g := Grid{
		Week:      week,
		Label:     week.Label(),
		Today:     today,
		TimeSlots: append([]string(nil), models.TimeSlots...),
		Previous:  week.Previous().Reference,
		Next:      week.Next().Reference,
	}

	for _, day := range week.Days {
		g.Headers = append(g.Headers, DayHeader{
			Date:    day,
			Weekday: day.Format("Mon"),
			Day:     day.Day,
			IsToday: day == today,
		})
	}

	for _, t := range models.TimeSlots {
		row := Row{Time: t, Cells: make([]Cell, 0, DaysPerWeek)}
		for _, day := range week.Days {
			ref := CellRef{Date: day, Time: t}
			row.Cells = append(row.Cells, Cell{
				ID:      ref.ID(),
				Date:    day,
				Time:    t,
				IsToday: day == today,
				Posts:   finder.FindBySlot(ctx, day, t),
			})
		}
		g.Rows = append(g.Rows, row)
	}

	for _, p := range models.Platforms {
		g.Legend = append(g.Legend, LegendEntry{Platform: p, Color: p.CalendarColor()})
	}
	return g
}

// Cell returns the cell for (day, time), or false when it is not on this grid.
func (g Grid) Cell(day models.Date, time string) (Cell, bool) {
	for _, row := range g.Rows {
		if row.Time != time {
			continue
		}
		for _, c := range row.Cells {
			if c.Date == day {
				return c, true
			}
		}
	}
	return Cell{}, false
}

func (g Grid) ScheduledCount() int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			n += len(c.Posts)
		}
	}
	return n
}

func (g Grid) OccupiedCells() int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			if len(c.Posts) > 0 {
				n++
			}
		}
	}
	return n
}

// Footer is the summary line under the grid.
func (g Grid) Footer() string {
	n := g.ScheduledCount()
	if n == 1 {
		return "1 post scheduled this week"
	}
	return fmt.Sprintf("%d posts scheduled this week", n)
}
