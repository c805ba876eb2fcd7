package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/printers"
)

type List struct {
	Port   string
	ShowID bool
	Client *client.Client
}

func (n *List) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list, no client")
	}

	events, err := n.Client.LoadEvents(ctx)
	if err != nil {
		return err
	}
	events = n.filtered(events)
	arrival.SortEvents(events)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("Llegadas", len(events))
	pp.Arrivals(events...)

	return nil
}

func (n *List) filtered(all []arrival.Event) []arrival.Event {
	if n.Port == "" {
		return all
	}
	c := make([]arrival.Event, 0, len(all))
	for _, a := range all {
		if a.Port == n.Port {
			c = append(c, a)
		}
	}
	return c
}
