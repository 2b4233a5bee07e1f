package port

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies platform failures.
type ErrorKind string

const (
	KindNone           ErrorKind = ""
	KindUnauthorized   ErrorKind = "unauthorized"
	KindRateLimited    ErrorKind = "rate_limited"
	KindInvalidRequest ErrorKind = "invalid_request"
	KindNotFound       ErrorKind = "not_found"
	KindServerError    ErrorKind = "server_error"
	KindNetworkError   ErrorKind = "network_error"
)

// Sentinels matched by errors.Is against a *PlatformError of the same kind.
var (
	ErrUnauthorized   = errors.New("platform: unauthorized")
	ErrRateLimited    = errors.New("platform: rate limited")
	ErrInvalidRequest = errors.New("platform: invalid request")
	ErrNotFound       = errors.New("platform: not found")
	ErrServerError    = errors.New("platform: server error")
	ErrNetworkError   = errors.New("platform: network error")

	ErrPersistence         = errors.New("persistence failure")
	ErrCredentialsNotFound = errors.New("credentials not found")
)

var kindSentinels = map[ErrorKind]error{
	KindUnauthorized:   ErrUnauthorized,
	KindRateLimited:    ErrRateLimited,
	KindInvalidRequest: ErrInvalidRequest,
	KindNotFound:       ErrNotFound,
	KindServerError:    ErrServerError,
	KindNetworkError:   ErrNetworkError,
}

// PlatformError is a classified failure of a call to the ad platform.
type PlatformError struct {
	Kind     ErrorKind
	Method   string
	Endpoint string
	// Status is the last HTTP status seen, zero for transport failures.
	Status   int
	Attempts int
	// Detail is the platform-provided error payload, if any.
	Detail json.RawMessage
	Err    error
}

func (e *PlatformError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Attempts > 1 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if len(e.Detail) > 0 {
		msg += ": " + string(e.Detail)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Is matches the sentinel of e's kind.
func (e *PlatformError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the ErrorKind of err, or KindNone when err is not a
// platform error.
func KindOf(err error) ErrorKind {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindNone
}

// PersistenceError wraps a failed settings store operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is matches ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
