package options

import (
	"github.com/spf13/cobra"
)

// EditOptions carry field overrides for an arrival. Flags left empty
// keep the stored values.
type EditOptions struct {
	Port  string
	Notes string
	Date  string
	Items []string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Port, "port", "",
		"Set the arrival port.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Set the arrival notes.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Set the arrival date, example: --date="2024-03-01".`)
}

func AddItemArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringArrayVar(&o.Items, "item", nil,
		Wrap80(`Replace the line items. Repeatable, example: --item="COD1|Tela azul|12,5|3".`))
}

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
