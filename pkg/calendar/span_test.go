package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfCalendarExamples(t *testing.T) {
	// January 2024 starts on a Monday.
	if got := StartOfCalendar(2024, time.January); !got.Equal(date(2024, time.January, 1)) {
		t.Fatalf("Jan 2024 start = %v, want 2024-01-01", got)
	}
	// February 2024 starts on a Thursday.
	if got := StartOfCalendar(2024, time.February); !got.Equal(date(2024, time.January, 29)) {
		t.Fatalf("Feb 2024 start = %v, want 2024-01-29", got)
	}
}

func TestSpanProperties(t *testing.T) {
	for year := 1999; year <= 2031; year++ {
		for m := time.January; m <= time.December; m++ {
			start := StartOfCalendar(year, m)
			end := EndOfCalendar(year, m)

			if start.Weekday() != time.Monday {
				t.Fatalf("%d-%v: start %v is %v, want Monday", year, m, start, start.Weekday())
			}
			if end.Weekday() != time.Sunday {
				t.Fatalf("%d-%v: end %v is %v, want Sunday", year, m, end, end.Weekday())
			}

			first := date(year, m, 1)
			last := date(year, m+1, 0)
			if start.After(first) || end.Before(last) {
				t.Fatalf("%d-%v: span [%v,%v] does not contain the month", year, m, start, end)
			}

			days := int(end.Sub(start).Hours()/24) + 1
			if days%7 != 0 {
				t.Fatalf("%d-%v: span of %d days is not whole weeks", year, m, days)
			}
		}
	}
}

func TestSpanMonthOverflow(t *testing.T) {
	// Month 0 resolves to December of the previous year, month 13 to
	// January of the next.
	if got, want := StartOfCalendar(2024, 0), StartOfCalendar(2023, time.December); !got.Equal(want) {
		t.Fatalf("month 0 start = %v, want %v", got, want)
	}
	if got, want := EndOfCalendar(2024, 13), EndOfCalendar(2025, time.January); !got.Equal(want) {
		t.Fatalf("month 13 end = %v, want %v", got, want)
	}
}

func TestMonthNavigationWraps(t *testing.T) {
	if y, m := PrevMonth(2024, time.January); y != 2023 || m != time.December {
		t.Fatalf("PrevMonth(Jan 2024) = %d-%v", y, m)
	}
	if y, m := NextMonth(2024, time.December); y != 2025 || m != time.January {
		t.Fatalf("NextMonth(Dec 2024) = %d-%v", y, m)
	}
	if y, m := NextMonth(2024, time.May); y != 2024 || m != time.June {
		t.Fatalf("NextMonth(May 2024) = %d-%v", y, m)
	}
}

func TestTitleCapitalized(t *testing.T) {
	if got := Title(2026, time.August); got != "Agosto 2026" {
		t.Fatalf("Title = %q, want %q", got, "Agosto 2026")
	}
	if got := Title(2024, time.January); got != "Enero 2024" {
		t.Fatalf("Title = %q, want %q", got, "Enero 2024")
	}
}
