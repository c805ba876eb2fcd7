package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	var port string
	var showID bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list arrivals, newest first",
		Example: `
arribo list
arribo list --port Valparaíso
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadClient(so)
			if err != nil {
				return err
			}
			s := list.List{
				Port:   port,
				ShowID: showID,
				Client: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)
	cmd.Flags().StringVar(&port, "port", "", "Only arrivals through this port.")
	cmd.Flags().BoolVar(&showID, "id", false, "Show the raw event id of each arrival.")

	topLevel.AddCommand(cmd)
}
