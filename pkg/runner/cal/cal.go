package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/printers"
)

type Cal struct {
	Year   int
	Month  int
	Client *client.Client
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show calendar, no client")
	}

	now := time.Now()
	if n.Year == 0 {
		n.Year = now.Year()
	}
	if n.Month == 0 {
		n.Month = int(now.Month())
	}
	if n.Month < 1 || n.Month > 12 {
		return fmt.Errorf("mes fuera de rango: %d", n.Month)
	}

	events, err := n.Client.LoadEvents(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(n.Year, time.Month(n.Month), events...)

	return nil
}
