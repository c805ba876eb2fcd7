package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.ServerOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
arribo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadClient(so)
			if err != nil {
				return err
			}
			i := ui.UI{Client: c}
			return i.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
