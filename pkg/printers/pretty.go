package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/puertosur/arribo/pkg/arrival"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" llegada")
	default:
		_, _ = c.Println(" llegadas")
	}
}

func (pp *PrettyPrint) Error(err error) {
	r := color.New(color.FgRed)
	_, _ = r.Printf("error: %v\n", err)
}

// Arrivals lists events newest first, one row per bill of lading.
func (pp *PrettyPrint) Arrivals(events ...arrival.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" ninguna\n\n")
		return
	}

	table := uitable.New()
	if pp.ShowID {
		table.AddRow("FECHA", "BL", "PUERTO", "ID")
	} else {
		table.AddRow("FECHA", "BL", "PUERTO")
	}
	for _, e := range events {
		date := e.Date
		if date == "" {
			date = "-"
		}
		port := e.Port
		if port == "" {
			port = "-"
		}
		if pp.ShowID {
			table.AddRow(date, e.DisplayTitle(), port, e.ID)
		} else {
			table.AddRow(date, e.DisplayTitle(), port)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Detail prints one arrival: title, meta line, then the line items with
// their totals.
func (pp *PrettyPrint) Detail(d arrival.Detail) {
	pp.Title(d.BL)

	f := color.New(color.Faint)
	if meta := arrival.MetaLine(d); meta != "" {
		_, _ = f.Println(meta)
	}
	fmt.Println("")

	if len(d.Items) == 0 {
		i := color.New(color.Faint, color.Italic)
		_, _ = i.Print(" sin partidas\n\n")
		return
	}

	meters, rolls := arrival.Totals(d.Items)

	table := uitable.New()
	table.AddRow("CODIGO", "DESCRIPCION", "METROS", "ROLLOS")
	for _, it := range d.Items {
		table.AddRow(it.Code, it.Description, arrival.FormatNumber(it.Meters), arrival.FormatCount(it.Rolls))
	}
	table.AddRow("", "TOTAL", arrival.FormatNumber(meters), arrival.FormatCount(rolls))
	fmt.Println(table)
	fmt.Println("")
}

// Uploaded reports the outcome of a PDF import.
func (pp *PrettyPrint) Uploaded(bl, date string, items int) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf("importado %s", bl)
	f := color.New(color.Faint)
	if date != "" {
		_, _ = f.Printf(" (%s)", date)
	}
	switch items {
	case 1:
		_, _ = f.Println(" - 1 partida")
	default:
		_, _ = f.Printf(" - %d partidas\n", items)
	}
}

// Saved confirms a successful edit.
func (pp *PrettyPrint) Saved(bl string) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf("guardado %s\n", bl)
}
