package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Specify the year. Defaults to the current year.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0,
		"Specify the month, 1 to 12. Defaults to the current month.")
}
