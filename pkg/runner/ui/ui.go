package ui

import (
	"context"
	"errors"

	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/tui/app"
)

type UI struct {
	Client *client.Client
}

func (n *UI) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not open ui, no client")
	}
	return app.Run(n.Client)
}
