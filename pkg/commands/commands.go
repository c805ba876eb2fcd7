package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
)

var verbose bool

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "arribo",
		Short: options.Wrap80("Track container arrivals from the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every request and response status.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCalendar(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addSave(topLevel)
	addUpload(topLevel)
	addLogin(topLevel)
	addVersion(topLevel)
}
