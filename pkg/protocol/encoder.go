package protocol

import "encoding/json"

// Canned replies for the two fixed error paths. Kept as literal bytes so the
// wire form is stable for clients that match on it.
var (
	invalidJSONReply = []byte(`{"type":"error","message":"invalid json"}`)
	unknownTypeReply = []byte(`{"type":"error","message":"unknown message type"}`)
)

// EncodeMessage marshals an outbound message to its text frame payload.
func EncodeMessage(v any) ([]byte, error) {
	return json.Marshal(v)
}

// ErrorReply renders the outbound error frame for a per-message failure.
// It never fails: the fixed replies are precomputed and the bad-request
// rendering marshals only strings.
func ErrorReply(err error) []byte {
	switch err {
	case ErrInvalidJSON:
		return invalidJSONReply
	case ErrUnknownType:
		return unknownTypeReply
	}
	payload, merr := json.Marshal(ErrorResponse{Type: TypeError, Message: ClientMessage(err)})
	if merr != nil {
		return invalidJSONReply
	}
	return payload
}
