package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	eo := &options.EditOptions{}
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "save [bl]",
		Short: "edit an arrival's fields or line items",
		Example: `
arribo save MSCU1234567 --port Valparaíso
arribo save MSCU1234567 --date 2024-03-01 --notes "nave atrasada"
arribo save MSCU1234567 --item "COD1|Tela azul|12,5|3" --item "COD2|Tela roja|8|2"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one bill of lading")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadClient(so)
			if err != nil {
				return err
			}
			s := save.Save{
				BL:     args[0],
				Port:   eo.Port,
				Notes:  eo.Notes,
				Date:   eo.Date,
				Items:  eo.Items,
				Yes:    yo.Yes,
				Client: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddEditArgs(cmd, eo)
	options.AddItemArgs(cmd, eo)
	options.AddYesArg(cmd, yo)

	topLevel.AddCommand(cmd)
}
