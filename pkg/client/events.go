package client

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/puertosur/arribo/pkg/arrival"
)

// LoadEvents fetches the events collection and normalizes each record.
// The backend's shape is loose — port/notes/pdf may live at the top
// level or nested under extendedProps — so normalization walks the raw
// JSON instead of a fixed struct.
func (c *Client) LoadEvents(ctx context.Context) ([]arrival.Event, error) {
	raw, err := c.fetchRaw(ctx, http.MethodGet, "/events", "", nil)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil, &DecodeError{Reason: "se esperaba una lista de eventos", Snippet: truncate(string(raw), maxJSONHint)}
	}

	events := make([]arrival.Event, 0, len(parsed.Array()))
	parsed.ForEach(func(_, e gjson.Result) bool {
		id := e.Get("id").String()
		title := e.Get("title").String()
		if id == "" {
			id = title
		}
		if title == "" {
			title = id
		}
		date := e.Get("start").String()
		if len(date) > 10 {
			date = date[:10]
		}
		events = append(events, arrival.Event{
			ID:    id,
			Title: title,
			Date:  date,
			Port:  firstString(e, "port", "extendedProps.port"),
			Notes: firstString(e, "notes", "extendedProps.notes"),
			PDF:   firstString(e, "pdf", "extendedProps.pdf"),
		})
		return true
	})
	return events, nil
}

func firstString(e gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := e.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
