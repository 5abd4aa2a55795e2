package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable decode failures. Both are reported to
// the peer and leave the connection open.
var (
	// ErrInvalidJSON is returned when a text frame is not valid JSON.
	ErrInvalidJSON = errors.New("protocol: invalid json")

	// ErrUnknownType is returned when the "type" field is missing or not a
	// recognized message type.
	ErrUnknownType = errors.New("protocol: unknown message type")
)

// BadRequestError reports a schema mismatch in an otherwise well-formed
// message, carrying the field-level cause. Field may be empty when the
// failure cannot be attributed to a single field.
type BadRequestError struct {
	Field  string
	Reason string
}

func (e *BadRequestError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("protocol: bad request: %s", e.Reason)
	}
	return fmt.Sprintf("protocol: bad request: %s: %s", e.Field, e.Reason)
}

// ClientMessage renders the client-visible text for a per-message failure.
func ClientMessage(err error) string {
	var bad *BadRequestError
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return "invalid json"
	case errors.Is(err, ErrUnknownType):
		return "unknown message type"
	case errors.As(err, &bad):
		if bad.Field == "" {
			return fmt.Sprintf("bad request: %s", bad.Reason)
		}
		return fmt.Sprintf("bad request: %s: %s", bad.Field, bad.Reason)
	default:
		return "internal error"
	}
}
