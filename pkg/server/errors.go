package server

import (
	"errors"
	"fmt"
)

// Sentinel errors for server lifecycle conditions.
var (
	// ErrAlreadyRunning is returned when Run is called on a running server.
	ErrAlreadyRunning = errors.New("server: already running")

	// ErrNotRunning is returned when Shutdown is called before Run.
	ErrNotRunning = errors.New("server: not running")
)

// ConnError wraps an error with connection context for logging.
type ConnError struct {
	Remote string // Peer address
	Op     string // Operation that failed
	Err    error  // Underlying error
}

// Error returns the error message with connection context.
func (e *ConnError) Error() string {
	if e.Remote == "" {
		return fmt.Sprintf("server: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("server: conn %s: %s: %v", e.Remote, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ConnError) Unwrap() error {
	return e.Err
}
