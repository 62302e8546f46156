package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a provider failure. The set is closed: callers switch on
// it instead of string-matching messages.
type Kind int

const (
	// ConnectionUnavailable means the backend could not be reached at all.
	ConnectionUnavailable Kind = iota
	// Timeout means the request exceeded the provider deadline.
	Timeout
	// MissingCredential means a required API key is not configured. The
	// backend short-circuits before any network call.
	MissingCredential
	// Unauthorized maps HTTP 401 from a cloud backend.
	Unauthorized
	// RateLimited maps HTTP 429 from a cloud backend.
	RateLimited
	// RemoteError covers any other non-success HTTP status.
	RemoteError
	// EmptyResponse means the backend answered but produced no text.
	EmptyResponse
	// Unexpected is the catch-all for everything else.
	Unexpected
)

func (k Kind) String() string {
	switch k {
	case ConnectionUnavailable:
		return "connection_unavailable"
	case Timeout:
		return "timeout"
	case MissingCredential:
		return "missing_credential"
	case Unauthorized:
		return "unauthorized"
	case RateLimited:
		return "rate_limited"
	case RemoteError:
		return "remote_error"
	case EmptyResponse:
		return "empty_response"
	default:
		return "unexpected"
	}
}

// Error is a classified provider failure. Message is always suitable for
// direct display to the user.
type Error struct {
	Kind     Kind
	Provider string
	Message  string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, providerName, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Provider: providerName,
		Message:  fmt.Sprintf(format, args...),
	}
}

// classifyTransport maps a failed http.Client.Do onto the taxonomy. The
// unreachable message is backend-specific so a local backend can tell the
// user how to start the service.
func classifyTransport(providerName string, err error, unreachableMsg string) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(Timeout, providerName, "request timed out after %s", requestTimeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(Timeout, providerName, "request timed out after %s", requestTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return newError(Unexpected, providerName, "request canceled")
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return newError(ConnectionUnavailable, providerName, "%s", unreachableMsg)
	}
	return newError(Unexpected, providerName, "%v", err)
}

// classifyStatus maps a cloud backend's non-2xx status onto the taxonomy.
// 401 and 429 get their own kinds so the user sees an actionable message.
func classifyStatus(providerName, label string, status int) *Error {
	switch status {
	case http.StatusUnauthorized:
		return newError(Unauthorized, providerName, "invalid %s API key", label)
	case http.StatusTooManyRequests:
		return newError(RateLimited, providerName, "%s rate limit exceeded", label)
	default:
		return newError(RemoteError, providerName, "%s API error (status %d)", label, status)
	}
}
