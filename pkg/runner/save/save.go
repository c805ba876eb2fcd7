package save

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/printers"
	"github.com/puertosur/arribo/pkg/session"
)

// Save edits one arrival on the backend. Empty Port, Notes and Date
// keep the stored values; Items, when given, replaces the whole item
// list. Each item row reads "CODE|DESCRIPTION|METERS|ROLLS" with the
// numeric fields in local notation (comma decimals).
type Save struct {
	BL      string
	Port    string
	Notes   string
	Date    string
	Items   []string
	Yes     bool
	Client  *client.Client
	Confirm session.Confirmer
}

func (n *Save) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not save, no client")
	}
	if n.BL == "" {
		return errors.New("falta el bill of lading")
	}

	current, err := n.Client.GetArrival(ctx, n.BL)
	if err != nil {
		return err
	}

	port := n.Port
	if port == "" {
		port = current.Port
	}
	notes := n.Notes
	if notes == "" {
		notes = current.Notes
	}
	date := n.Date
	if date == "" {
		date = current.Date
	}

	items := current.Items
	if len(n.Items) > 0 {
		inputs, err := parseRows(n.Items)
		if err != nil {
			return err
		}
		items = arrival.BuildItems(inputs)
	}

	if !n.Yes {
		c := n.Confirm
		if c == nil {
			c = session.TerminalConfirmer{}
		}
		if !c.Confirm(fmt.Sprintf("Guardar cambios en %s", n.BL)) {
			return errors.New("cancelado")
		}
	}

	if err := n.Client.SaveArrival(ctx, n.BL, client.NewSavePayload(port, notes, date, items)); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Saved(n.BL)

	// Show the persisted state rather than echoing the payload.
	saved, err := n.Client.GetArrival(ctx, n.BL)
	if err != nil {
		return err
	}
	pp.Detail(saved)

	return nil
}

func parseRows(rows []string) ([]arrival.ItemInput, error) {
	inputs := make([]arrival.ItemInput, 0, len(rows))
	for _, row := range rows {
		parts := strings.Split(row, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("partida mal formada %q, se espera CODE|DESCRIPTION|METERS|ROLLS", row)
		}
		inputs = append(inputs, arrival.ItemInput{
			Code:        parts[0],
			Description: parts[1],
			Meters:      parts[2],
			Rolls:       parts[3],
		})
	}
	return inputs, nil
}
