// Package arrival holds the domain model for container arrivals: the
// calendar events returned by the backend, the full bill-of-lading
// detail with its cargo line items, and the display/coercion rules
// shared by the CLI and the TUI.
package arrival

import (
	"sort"
	"strings"
)

// Event is one arrival as it appears on the calendar. Optional fields
// are empty strings when the backend omits them.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // ISO YYYY-MM-DD
	Port  string `json:"port,omitempty"`
	Notes string `json:"notes,omitempty"`
	PDF   string `json:"pdf,omitempty"`
}

// Detail is the full record for one bill of lading.
type Detail struct {
	BL    string     `json:"bl"`
	Date  string     `json:"date"`
	Port  string     `json:"port,omitempty"`
	Notes string     `json:"notes,omitempty"`
	Items []LineItem `json:"items"`
}

// LineItem is one cargo entry within an arrival.
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Meters      float64 `json:"meters"`
	Rolls       int     `json:"rolls"`
}

// Totals returns the exact sums of meters and rolls across items.
// Callers recompute on every render; nothing is cached.
func Totals(items []LineItem) (meters float64, rolls int) {
	for _, it := range items {
		meters += it.Meters
		rolls += it.Rolls
	}
	return meters, rolls
}

const titlePrefix = "Llegada:"

// DisplayTitle strips the backend's "Llegada:" prefix from an event
// title for list rendering.
func DisplayTitle(title string) string {
	if strings.HasPrefix(title, titlePrefix) {
		return strings.TrimLeft(strings.TrimPrefix(title, titlePrefix), " ")
	}
	return title
}

// DisplayTitle returns the event's title ready for list rendering.
func (e Event) DisplayTitle() string {
	return DisplayTitle(e.Title)
}

// SortEvents orders events newest first by their ISO date string.
// Lexicographic comparison is enough for YYYY-MM-DD; events without a
// date compare as empty and end up last. The sort is stable so the
// backend's order is preserved within a day.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
}

// MetaLine renders the one-line metadata summary for a detail view:
// the date, then port and notes each joined with a literal separator
// only when present.
func MetaLine(d Detail) string {
	var b strings.Builder
	b.WriteString("Fecha: ")
	b.WriteString(d.Date)
	if d.Port != "" {
		b.WriteString(" | Puerto: ")
		b.WriteString(d.Port)
	}
	if d.Notes != "" {
		b.WriteString(" | Notas: ")
		b.WriteString(d.Notes)
	}
	return b.String()
}
