package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// SessionError reports a failed session-creation call, either a non-2xx
// status or a transport failure.
type SessionError struct {
	Status int
	Err    error
}

func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session creation failed: %v", e.Err)
	}
	return fmt.Sprintf("session creation failed: backend returned status %d", e.Status)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx backend response on a run call.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// IsTimeout reports whether err was caused by a backend call exceeding its
// deadline. Timeouts are surfaced to callers distinctly from generic backend
// failures.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
