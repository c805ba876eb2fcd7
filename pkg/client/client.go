// Package client wraps the arrival backend's HTTP API: the events
// collection, per-BL detail and updates, PDF upload, and the login
// session boundary. The backend owns parsing, persistence and
// validation; this package only moves JSON and classifies failures.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyRead    = 1 << 20

	// Error text shown to users is bounded so an HTML error page can
	// not flood the UI.
	maxErrBody    = 500
	maxJSONHint   = 120
	sessionCookie = "session"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://127.0.0.1:5000".
	BaseURL string
	// Timeout bounds every request. Zero means the 15s default; the
	// transport is never left unbounded.
	Timeout time.Duration
	// Cookie is the persisted session cookie ("session=..."), if any.
	Cookie string
	// RetryMax overrides the transport retry count (default 2).
	// Negative disables retries.
	RetryMax int
}

// Client talks to one backend instance.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	cookie  string
}

// New builds a client over a retrying transport.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := opts.RetryMax
	if retries == 0 {
		retries = 2
	} else if retries < 0 {
		retries = 0
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = retries
	rc.Logger = nil
	rc.HTTPClient.Timeout = timeout
	// Keep the last response when retries run out; the status and body
	// feed the error taxonomy instead of a generic giving-up error.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		base:    base,
		http:    rc.StandardClient(),
		timeout: timeout,
		cookie:  opts.Cookie,
	}, nil
}

// SetCookie replaces the session cookie attached to requests.
func (c *Client) SetCookie(cookie string) { c.cookie = cookie }

// fetchJSON performs a request and applies the shared response
// contract: a redirect landing on /login means the session expired,
// non-2xx carries the raw body as the error text, and a 2xx answer
// must be JSON.
func (c *Client) fetchJSON(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	raw, err := c.fetchRaw(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Reason: "respuesta JSON inválida", Snippet: truncate(string(raw), maxJSONHint)}
	}
	return nil
}

// fetchRaw is fetchJSON up to (and including) the content-type check,
// returning the body bytes for callers that decode loosely.
func (c *Client) fetchRaw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	// path arrives in escaped form. JoinPath keeps it that way; going
	// through u.Path would escape the percent signs a second time.
	u := c.base.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	log.Debugf("%s %s", method, u.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// An expired session never errors outright: the backend redirects
	// to the login page and the transport follows it here.
	if resp.Request != nil && strings.Contains(resp.Request.URL.Path, "/login") && !strings.Contains(path, "/login") {
		return nil, &AuthExpiredError{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Status: resp.StatusCode, Body: truncate(string(raw), maxErrBody)}
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return nil, &DecodeError{
			Reason:  "respuesta no-JSON del servidor (¿redirección o error HTML?)",
			Snippet: truncate(string(raw), maxJSONHint),
		}
	}
	return raw, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
