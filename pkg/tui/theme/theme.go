package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Grid   GridTheme
	List   ListTheme
	Detail DetailTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// GridTheme styles the month calendar.
type GridTheme struct {
	Title    lipgloss.Style
	Weekdays lipgloss.Style
	Day      lipgloss.Style
	DayOut   lipgloss.Style
	DayBusy  lipgloss.Style
	Cursor   lipgloss.Style
}

// ListTheme styles the arrival list.
type ListTheme struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Meta     lipgloss.Style
	Empty    lipgloss.Style
}

// DetailTheme styles the arrival detail pane.
type DetailTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Header lipgloss.Style
	Total  lipgloss.Style
	Label  lipgloss.Style
	Dirty  lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., discard prompt).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Grid: GridTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Weekdays: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Day:      lipgloss.NewStyle(),
			DayOut:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			DayBusy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Cursor:   lipgloss.NewStyle().Reverse(true),
		},
		List: ListTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Header: lipgloss.NewStyle().Underline(true),
			Total:  lipgloss.NewStyle().Bold(true),
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Dirty:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
	}
}
