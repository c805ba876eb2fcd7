package calendar

import (
	"time"

	"github.com/puertosur/arribo/pkg/arrival"
)

const layoutISO = "2006-01-02"

// Cell is one day of the rendered month grid. Cells are rebuilt on
// every render and never persisted.
type Cell struct {
	Date    time.Time
	InMonth bool
	Events  []arrival.Event
}

// ISO returns the cell's date key.
func (c Cell) ISO() string {
	return c.Date.Format(layoutISO)
}

// Bucket groups events by their exact date string. Insertion order is
// the backend's order; nothing is re-sorted. Undated events are left
// out of the grid.
func Bucket(events []arrival.Event) map[string][]arrival.Event {
	byDate := make(map[string][]arrival.Event, len(events))
	for _, e := range events {
		if e.Date == "" {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	return byDate
}

// Grid yields one cell per day of the visible span of the month, in
// order, marking days outside the month.
func Grid(year int, month time.Month, events []arrival.Event) []Cell {
	start := StartOfCalendar(year, month)
	end := EndOfCalendar(year, month)
	byDate := Bucket(events)

	// Out-of-range months (0, 13, ...) normalize into the adjacent
	// year, same as the span functions.
	inMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Month()

	cells := make([]Cell, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:    d,
			InMonth: d.Month() == inMonth,
			Events:  byDate[d.Format(layoutISO)],
		})
	}
	return cells
}
