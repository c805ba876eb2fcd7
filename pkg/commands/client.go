package commands

import (
	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/commands/options"
	"github.com/puertosur/arribo/pkg/store"
)

// loadClient builds the backend client from config plus flag overrides
// and primes it with any stored session cookie.
func loadClient(so *options.ServerOptions) (*client.Client, store.Credentials, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	base := cfg.BaseURL()
	if so != nil && so.BaseURL != "" {
		base = so.BaseURL
	}

	creds, err := store.OpenCredentials("")
	if err != nil {
		return nil, nil, err
	}

	c, err := client.New(client.Options{
		BaseURL: base,
		Timeout: cfg.Timeout(),
		Cookie:  creds.Session(),
	})
	if err != nil {
		return nil, nil, err
	}
	return c, creds, nil
}
