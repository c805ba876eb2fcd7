// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ServerOptions
type ServerOptions struct {
	BaseURL string
}

func AddServerArgs(cmd *cobra.Command, o *ServerOptions) {
	cmd.Flags().StringVar(&o.BaseURL, "server", "",
		Wrap80("Backend base URL. Overrides base_url from .arribo.yaml and ARRIBO_BASE_URL."))
}
