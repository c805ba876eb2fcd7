package arrival

import (
	"reflect"
	"testing"
)

func TestParseMeters(t *testing.T) {
	cases := map[string]float64{
		"10,5":   10.5,
		"10.5":   10.5,
		" 1234 ": 1234,
		"":       0,
		"abc":    0,
	}
	for in, want := range cases {
		if got := ParseMeters(in); got != want {
			t.Errorf("ParseMeters(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseRolls(t *testing.T) {
	cases := map[string]int{
		"3":    3,
		" 12 ": 12,
		"12.7": 12,
		"":     0,
		"x":    0,
	}
	for in, want := range cases {
		if got := ParseRolls(in); got != want {
			t.Errorf("ParseRolls(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestBuildItemsDropsBlankRows(t *testing.T) {
	rows := []ItemInput{
		{Code: "A1", Description: "tela azul", Meters: "10,5", Rolls: "3"},
		{Code: "", Description: "", Meters: "99", Rolls: "4"}, // blanked on purpose
		{Code: "B2", Description: "", Meters: "", Rolls: ""},
	}
	got := BuildItems(rows)
	want := []LineItem{
		{Code: "A1", Description: "tela azul", Meters: 10.5, Rolls: 3},
		{Code: "B2", Description: "", Meters: 0, Rolls: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildItems = %+v, want %+v", got, want)
	}
}

func TestBuildItemsTrimsFields(t *testing.T) {
	got := BuildItems([]ItemInput{{Code: " A1 ", Description: " tela ", Meters: "1", Rolls: "1"}})
	if got[0].Code != "A1" || got[0].Description != "tela" {
		t.Fatalf("fields not trimmed: %+v", got[0])
	}
}

// Round-trip: seeding inputs from a detail and rebuilding without
// touching anything must reproduce the original items.
func TestEditBufferRoundTrip(t *testing.T) {
	items := []LineItem{
		{Code: "A1", Description: "tela azul", Meters: 1234.5, Rolls: 12},
		{Code: "B2", Description: "tela roja", Meters: 2, Rolls: 0},
	}
	rows := make([]ItemInput, len(items))
	for i, it := range items {
		rows[i] = ItemInput{
			Code:        it.Code,
			Description: it.Description,
			Meters:      StripGrouping(FormatNumber(it.Meters)),
			Rolls:       FormatCount(it.Rolls),
		}
	}
	if got := BuildItems(rows); !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip changed items: %+v want %+v", got, items)
	}
}
