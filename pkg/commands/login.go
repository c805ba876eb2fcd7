package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in and keep the session for later commands",
		Example: `
arribo login
arribo login -u admin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, creds, err := loadClient(so)
			if err != nil {
				return err
			}
			s := login.Login{
				Username:    co.Username,
				Password:    co.Password,
				Client:      c,
				Credentials: creds,
			}
			return s.Do(context.Background())
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddCredentialArgs(cmd, co)

	topLevel.AddCommand(cmd)
	addLogout(topLevel, so)
}

func addLogout(topLevel *cobra.Command, so *options.ServerOptions) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out and forget the stored session",
		Example: `
arribo logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, creds, err := loadClient(so)
			if err != nil {
				return err
			}
			s := login.Login{
				Out:         true,
				Client:      c,
				Credentials: creds,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
