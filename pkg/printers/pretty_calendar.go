package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/calendar"
)

const width = len("Lu Ma Mi Ju Vi Sa Do")

var weekHeader = "Lu Ma Mi Ju Vi Sa Do"

// Calendar prints one month as a Monday-first grid. Days carrying at
// least one arrival are bold; days outside the month are faint. The
// arrivals themselves are listed below the grid, newest first.
func (pp *PrettyPrint) Calendar(year int, month time.Month, events ...arrival.Event) {
	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint)

	title := calendar.Title(year, month)
	mid := (width - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = hf.Println(weekHeader)

	out := color.New(color.Faint)
	quiet := color.New(color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)

	cells := calendar.Grid(year, month, events)
	for i, c := range cells {
		printer := quiet
		switch {
		case !c.InMonth:
			printer = out
		case len(c.Events) > 0:
			printer = busy
		}
		_, _ = printer.Printf("%2d", c.Date.Day())
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Print("\n")

	listed := 0
	p := color.New()
	f := color.New(color.Faint)
	for _, c := range cells {
		if !c.InMonth || len(c.Events) == 0 {
			continue
		}
		for _, e := range c.Events {
			_, _ = f.Printf("%s  ", c.ISO())
			_, _ = p.Print(e.ID)
			if e.Port != "" {
				_, _ = f.Printf("  %s", e.Port)
			}
			fmt.Print("\n")
			listed++
		}
	}
	if listed == 0 {
		i := color.New(color.Faint, color.Italic)
		_, _ = i.Println(" sin llegadas este mes")
	}
	fmt.Print("\n")
}
