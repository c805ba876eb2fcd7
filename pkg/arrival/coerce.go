package arrival

import (
	"strconv"
	"strings"
)

// ItemInput is one editable row as captured from input fields, before
// numeric coercion.
type ItemInput struct {
	Code        string
	Description string
	Meters      string
	Rolls       string
}

// ParseMeters coerces a textual meters value: comma decimal separators
// become dots, then the result parses as a float. Anything non-numeric
// (or empty) yields 0.
func ParseMeters(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseRolls coerces a textual rolls value to an integer. Fractional
// numeric input truncates toward zero; non-numeric or empty yields 0.
func ParseRolls(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return int(f)
	}
	return 0
}

// BuildItems converts edited rows into line items for a save payload.
// Rows where both code and description are empty are dropped, even if
// their numeric fields are not; those rows were blanked on purpose.
func BuildItems(rows []ItemInput) []LineItem {
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		if row.Code == "" && row.Description == "" {
			continue
		}
		items = append(items, LineItem{
			Code:        strings.TrimSpace(row.Code),
			Description: strings.TrimSpace(row.Description),
			Meters:      ParseMeters(row.Meters),
			Rolls:       ParseRolls(row.Rolls),
		})
	}
	return items
}
