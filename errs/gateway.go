package errs

import (
	"errors"
	"fmt"
)

// Content gateway sentinel values
var (
	ErrGatewayStatus      = errors.New("content API returned an error status")
	ErrGatewayTimeout     = errors.New("content API request timed out")
	ErrGatewayUnavailable = errors.New("content API unreachable")
	ErrGatewayDecode      = errors.New("content API response could not be decoded")
)

// GatewayError is raised by the content gateway for non-2xx responses and
// transport failures. Status is 0 when no HTTP response was received.
type GatewayError struct {
	Status int
	Detail string
	Path   string
	kind   error
	Cause  error
}

// NewGatewayStatusError builds the error for a non-2xx response
func NewGatewayStatusError(status int, path, detail string) *GatewayError {
	return &GatewayError{Status: status, Path: path, Detail: detail, kind: ErrGatewayStatus}
}

// NewGatewayTransportError builds the error for a request that never got a response.
// Timeouts are tagged so callers can tell them apart with errors.Is.
func NewGatewayTransportError(path string, cause error, timedOut bool) *GatewayError {
	kind := ErrGatewayUnavailable
	if timedOut {
		kind = ErrGatewayTimeout
	}
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &GatewayError{Path: path, Detail: detail, kind: kind, Cause: cause}
}

// NewGatewayDecodeError builds the error for a 2xx response with an unreadable body
func NewGatewayDecodeError(status int, path string, cause error) *GatewayError {
	return &GatewayError{Status: status, Path: path, Detail: cause.Error(), kind: ErrGatewayDecode, Cause: cause}
}

func (e *GatewayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("Strapi API error: %s", e.Detail)
	}
	if e.Detail == "" {
		return fmt.Sprintf("Strapi API error: %d", e.Status)
	}
	return fmt.Sprintf("Strapi API error: %d. %s", e.Status, e.Detail)
}

// Is matches the sentinel describing the failure kind
func (e *GatewayError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// HasStatus reports whether an HTTP response was received
func (e *GatewayError) HasStatus() bool {
	return e.Status != 0
}

func IsGatewayTimeout(err error) bool {
	return errors.Is(err, ErrGatewayTimeout)
}

func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}
