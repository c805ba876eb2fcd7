package show

import (
	"context"
	"errors"
	"fmt"

	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/printers"
)

type Show struct {
	BL     string
	Client *client.Client
}

func (n *Show) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show, no client")
	}
	if n.BL == "" {
		return errors.New("falta el bill of lading")
	}

	detail, err := n.Client.GetArrival(ctx, n.BL)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Detail(detail)

	return nil
}
