package arrival

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The backend's audience reads Chilean Spanish: thousands separated
// with "." and a "," decimal separator.
var locale = message.NewPrinter(language.MustParse("es-CL"))

// FormatNumber renders a quantity the way the detail tables show it,
// e.g. 12.5 -> "12,5" and 1234 -> "1.234".
func FormatNumber(v float64) string {
	return locale.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatCount renders an integer quantity with locale grouping.
func FormatCount(n int) string {
	return locale.Sprint(number.Decimal(n))
}

// StripGrouping removes thousands separators from a displayed number
// so it can seed an editable input.
func StripGrouping(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '.' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
