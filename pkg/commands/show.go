package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	so := &options.ServerOptions{}

	cmd := &cobra.Command{
		Use:   "show [bl]",
		Short: "show one arrival with its line items",
		Example: `
arribo show MSCU1234567
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
			s := show.Show{
				BL:     args[0],
				Client: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
