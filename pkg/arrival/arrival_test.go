package arrival

import "testing"

func TestTotalsAreExactSums(t *testing.T) {
	items := []LineItem{
		{Meters: 10.5, Rolls: 3},
		{Meters: 2, Rolls: 0},
	}
	m, r := Totals(items)
	if m != 12.5 {
		t.Fatalf("meters total = %v, want 12.5", m)
	}
	if r != 3 {
		t.Fatalf("rolls total = %d, want 3", r)
	}
	if got := FormatNumber(m); got != "12,5" {
		t.Fatalf("formatted meters = %q, want %q", got, "12,5")
	}
	if got := FormatCount(r); got != "3" {
		t.Fatalf("formatted rolls = %q, want %q", got, "3")
	}
}

func TestTotalsEmpty(t *testing.T) {
	m, r := Totals(nil)
	if m != 0 || r != 0 {
		t.Fatalf("empty totals = %v/%d, want 0/0", m, r)
	}
}

func TestFormatNumberGrouping(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		1234:    "1.234",
		1234.75: "1.234,75",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestStripGrouping(t *testing.T) {
	if got := StripGrouping("1.234,5"); got != "1234,5" {
		t.Fatalf("StripGrouping = %q, want %q", got, "1234,5")
	}
}

func TestDisplayTitleStripsPrefix(t *testing.T) {
	cases := map[string]string{
		"Llegada: MSCU1234567": "MSCU1234567",
		"Llegada:MSCU1234567":  "MSCU1234567",
		"MSCU1234567":          "MSCU1234567",
	}
	for in, want := range cases {
		if got := DisplayTitle(in); got != want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortEventsDescending(t *testing.T) {
	events := []Event{
		{ID: "a", Date: "2024-03-01"},
		{ID: "b", Date: "2024-01-15"},
		{ID: "c", Date: "2024-03-02"},
	}
	SortEvents(events)
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if events[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, events[i].ID, id)
		}
	}
}

func TestSortEventsMissingDateLast(t *testing.T) {
	events := []Event{
		{ID: "undated"},
		{ID: "dated", Date: "2024-01-01"},
	}
	SortEvents(events)
	if events[len(events)-1].ID != "undated" {
		t.Fatalf("undated event should sort last, got order %v", events)
	}
}

func TestMetaLine(t *testing.T) {
	d := Detail{BL: "BL1", Date: "2024-05-01"}
	if got := MetaLine(d); got != "Fecha: 2024-05-01" {
		t.Fatalf("MetaLine = %q", got)
	}
	d.Port = "Valparaíso"
	d.Notes = "urgente"
	want := "Fecha: 2024-05-01 | Puerto: Valparaíso | Notas: urgente"
	if got := MetaLine(d); got != want {
		t.Fatalf("MetaLine = %q, want %q", got, want)
	}
}
