package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/printers"
	"github.com/puertosur/arribo/pkg/session"
)

// Upload imports a bill of lading PDF. The backend parses the file and
// answers with the arrival it created or replaced; the full detail is
// fetched afterwards so the printed result reflects the stored state.
type Upload struct {
	Path    string
	BL      string
	Port    string
	Notes   string
	Date    string
	Yes     bool
	Client  *client.Client
	Confirm session.Confirmer
}

func (n *Upload) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not upload, no client")
	}
	if n.Path == "" {
		return errors.New("falta el archivo PDF")
	}

	if !n.Yes {
		c := n.Confirm
		if c == nil {
			c = session.TerminalConfirmer{}
		}
		if !c.Confirm(fmt.Sprintf("Importar %s", n.Path)) {
			return errors.New("cancelado")
		}
	}

	res, err := n.Client.Upload(ctx, client.UploadRequest{
		Path:  n.Path,
		BL:    n.BL,
		Port:  n.Port,
		Notes: n.Notes,
		Date:  n.Date,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Uploaded(res.BL, res.Date, res.Items)

	detail, err := n.Client.GetArrival(ctx, res.BL)
	if err != nil {
		return err
	}
	pp.Detail(detail)

	return nil
}
