package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned when no backend has an API key.
var ErrNotConfigured = errors.New("no flight computer link configured")

// Kind classifies a failed call.
type Kind int

const (
	KindUnavailable Kind = iota // transport failure or 5xx
	KindRejected                // the backend refused the request (4xx)
	KindInvalid                 // the reply was missing or failed the schema
	KindTruncated               // the reply hit MaxTokens
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindInvalid:
		return "invalid reply"
	case KindTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Error is the error every backend returns.
type Error struct {
	Backend string
	Kind    Kind

	// Content holds the offending reply for KindInvalid and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Backend, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// statusError classifies an HTTP status returned by a backend SDK.
func statusError(backend string, status int, err error) *Error {
	kind := KindUnavailable
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		kind = KindRejected
	}
	return &Error{Backend: backend, Kind: kind, Err: err}
}
