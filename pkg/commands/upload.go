package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/upload"
)

func addUpload(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	eo := &options.EditOptions{}
	yo := &options.ConfirmOptions{}
	var bl string

	cmd := &cobra.Command{
		Use:   "upload [pdf]",
		Short: "import a bill of lading PDF",
		Example: `
arribo upload bl.pdf
arribo upload bl.pdf --bl MSCU1234567 --port Valparaíso
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one PDF path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadClient(so)
			if err != nil {
				return err
			}
			s := upload.Upload{
				Path:   args[0],
				BL:     bl,
				Port:   eo.Port,
				Notes:  eo.Notes,
				Date:   eo.Date,
				Yes:    yo.Yes,
				Client: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddEditArgs(cmd, eo)
	options.AddYesArg(cmd, yo)
	cmd.Flags().StringVar(&bl, "bl", "", "Bill of lading when the PDF does not carry one.")

	topLevel.AddCommand(cmd)
}
