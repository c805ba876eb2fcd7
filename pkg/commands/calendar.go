package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/cal"
)

func addCalendar(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show the month calendar of arrivals",
		Example: `
arribo calendar
arribo cal --month 3 --year 2024
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadClient(so)
			if err != nil {
				return err
			}
			s := cal.Cal{
				Year:   mo.Year,
				Month:  mo.Month,
				Client: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
