package api

import "errors"

// Kind classifies a failed request.
type Kind string

const (
	// KindUnauthorized is an HTTP 401, the session has been cleared
	KindUnauthorized Kind = "unauthorized"
	// KindRequestFailed is any other non-2xx response with a server message
	KindRequestFailed Kind = "request_failed"
	// KindNetwork means no response arrived at all
	KindNetwork Kind = "network_error"
	// KindProtocol is a 2xx response violating the documented contract
	KindProtocol Kind = "protocol_error"
)

// Error is the value returned for every failed API call. Callers branch on
// Kind, never on the raw HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// ErrorKind returns the Kind of err, or "" when err is not an API error.
func ErrorKind(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is a 401 outcome.
func IsUnauthorized(err error) bool {
	return ErrorKind(err) == KindUnauthorized
}
