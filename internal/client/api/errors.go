package api

import (
	"errors"
	"fmt"
)

// TransportError indicates that the remote store could not be reached or
// answered with a non-2xx status. It is retryable by a later pass: callers
// must never clear dirty flags in response to it.
type TransportError struct {
	Err        error
	Op         string
	Message    string
	StatusCode int // 0 если запрос вообще не завершился
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("%s: server error (%d): %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: request failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is (or wraps) a *TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
