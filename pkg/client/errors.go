package client

import "fmt"

// The UI recovers every one of these at the action boundary; none is
// fatal. Messages are truncated before they reach a terminal.

// NetworkError covers transport failures and non-2xx responses. For
// HTTP-level failures Body carries the raw (truncated) response text.
type NetworkError struct {
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return "request failed: " + e.Err.Error()
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthExpiredError signals that the backend redirected the request to
// /login: the session expired or the user lacks the role.
type AuthExpiredError struct{}

func (*AuthExpiredError) Error() string {
	return "sesión expirada o sin permisos (redirigido a /login); vuelve a iniciar sesión"
}

// DecodeError signals a 2xx response whose body is not the expected
// JSON shape.
type DecodeError struct {
	Reason  string
	Snippet string
}

func (e *DecodeError) Error() string {
	if e.Snippet == "" {
		return e.Reason
	}
	return e.Reason + ": " + e.Snippet
}

// ValidationError is a semantically rejected update (4xx on save).
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rechazado por el servidor (%d): %s", e.Status, e.Message)
}

// NotFoundError reports an unknown bill of lading.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "BL no encontrado: " + e.ID
}
