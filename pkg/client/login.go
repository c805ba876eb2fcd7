package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// Login posts credentials to the backend's form endpoint and captures
// the session cookie. The success path is a redirect, so this request
// deliberately does not follow redirects; a 200 means the login page
// was re-rendered with an error.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/login"

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	noRedirect := &http.Client{
		Timeout: c.timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie && ck.Value != "" {
			cookie := ck.Name + "=" + ck.Value
			c.cookie = cookie
			return cookie, nil
		}
	}
	return "", &AuthExpiredError{}
}

// Logout tells the backend to clear the session. Best effort: the
// local cookie is dropped regardless.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.fetchRaw(ctx, http.MethodGet, "/logout", "", nil)
	c.cookie = ""

	var expired *AuthExpiredError
	if errors.As(err, &expired) {
		// Logging out of a dead session is fine.
		return nil
	}
	return err
}
