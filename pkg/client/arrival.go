package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/puertosur/arribo/pkg/arrival"
)

// SavePayload is the update body for PUT /arrival/{id}. Date is null
// when the edited field was cleared.
type SavePayload struct {
	Port  string             `json:"port"`
	Notes string             `json:"notes"`
	Date  *string            `json:"date"`
	Items []arrival.LineItem `json:"items"`
}

// NewSavePayload assembles a payload, mapping an empty date to null.
func NewSavePayload(port, notes, date string, items []arrival.LineItem) SavePayload {
	p := SavePayload{Port: port, Notes: notes, Items: items}
	if date != "" {
		p.Date = &date
	}
	return p
}

// GetArrival fetches one bill of lading's full detail.
func (c *Client) GetArrival(ctx context.Context, id string) (arrival.Detail, error) {
	var detail arrival.Detail
	err := c.fetchJSON(ctx, http.MethodGet, "/arrival/"+url.PathEscape(id), "", nil, &detail)

	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Status == http.StatusNotFound {
		return detail, &NotFoundError{ID: id}
	}
	return detail, err
}

// SaveArrival persists an edit. Success returns nothing meaningful:
// callers re-fetch to observe persisted state, there is no optimistic
// merge. A 4xx answer is the server rejecting the payload.
func (c *Client) SaveArrival(ctx context.Context, id string, payload SavePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = c.fetchJSON(ctx, http.MethodPut, "/arrival/"+url.PathEscape(id), "application/json", bytes.NewReader(body), nil)

	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Status >= 400 && netErr.Status < 500 {
		return &ValidationError{Status: netErr.Status, Message: netErr.Body}
	}
	return err
}
