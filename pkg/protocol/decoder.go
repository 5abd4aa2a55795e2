package protocol

import (
	"encoding/json"
	"errors"
)

// envelope is the first-pass decode target used to sniff the message type.
type envelope struct {
	Type string `json:"type"`
}

// DecodeMessage decodes one inbound text frame into its typed message:
// *MetadataRequest or *SliceRequest. Malformed JSON yields ErrInvalidJSON,
// an unrecognized type ErrUnknownType, and a schema mismatch inside a known
// type a *BadRequestError naming the field.
func DecodeMessage(data []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// A frame that parses as JSON but is not an object with a string
		// "type" (an array, a bare string, {"type":1}) is a recognizable
		// message with an unusable type, not malformed JSON.
		if json.Valid(data) {
			return nil, ErrUnknownType
		}
		return nil, ErrInvalidJSON
	}

	switch env.Type {
	case TypeMetadataRequest:
		return &MetadataRequest{Type: env.Type}, nil

	case TypeSliceRequest:
		var req SliceRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, badRequest(err)
		}
		return &req, nil

	default:
		return nil, ErrUnknownType
	}
}

// badRequest converts a json unmarshal failure into a BadRequestError,
// preserving the field name when the decoder reports one.
func badRequest(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &BadRequestError{
			Field:  typeErr.Field,
			Reason: "cannot decode " + typeErr.Value + " into " + typeErr.Type.String(),
		}
	}
	return &BadRequestError{Reason: err.Error()}
}
