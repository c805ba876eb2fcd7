// Package calendar computes the visible span of a month grid and the
// per-day cells that fill it. Weeks start on Monday.
package calendar

import (
	"strconv"
	"time"
)

// StartOfCalendar returns the Monday on or before the first day of the
// month. Out-of-range months (0, 13, ...) normalize into the adjacent
// year via time.Date.
func StartOfCalendar(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	dow := int(first.Weekday())
	if dow == 0 { // Sunday counts as 7 in a Monday-first week
		dow = 7
	}
	return first.AddDate(0, 0, -(dow - 1))
}

// EndOfCalendar returns the Sunday on or after the last day of the
// month.
func EndOfCalendar(year int, month time.Month) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	dow := int(last.Weekday())
	if dow == 0 {
		dow = 7
	}
	return last.AddDate(0, 0, 7-dow)
}

// PrevMonth steps back one month, wrapping across the year boundary.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps forward one month, wrapping across the year boundary.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// monthNames holds the Spanish month labels used by the title, indexed
// by time.Month.
var monthNames = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// Title renders the localized "Month Year" heading, capitalized at the
// first character: Title(2026, time.August) == "Agosto 2026".
func Title(year int, month time.Month) string {
	name := monthNames[month]
	return string(name[0]-'a'+'A') + name[1:] + " " + strconv.Itoa(year)
}
