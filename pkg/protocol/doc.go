// Package protocol defines the JSON wire messages exchanged over the grid
// WebSocket connection and the decode/encode logic for them.
//
// Every message is a single JSON text frame with a "type" discriminator and
// lowerCamelCase fields:
//
//	client → server: metadata_request, slice_request
//	server → client: metadata_response, slice_response, error
//
// Decoding is schema-validated: the envelope is sniffed for the type, then
// the payload is unmarshaled once into the typed struct for that message.
// Failures map onto a small taxonomy the connection handler can render to
// the client without closing the connection: ErrInvalidJSON, ErrUnknownType,
// and *BadRequestError carrying the offending field.
package protocol
