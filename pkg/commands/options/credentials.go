package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions
type CredentialOptions struct {
	Username string
	Password string
}

func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Username. Prompted for when omitted.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Password. Prompted for when omitted.")
}
