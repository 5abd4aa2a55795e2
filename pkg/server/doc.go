// Package server provides the WebSocket connection handler for the grid
// slice service.
//
// The Server upgrades HTTP requests on its WebSocket path and runs one
// connection loop per client on the handler goroutine: blocking read, decode,
// dispatch to the slice engine, reply, repeat. Connections share nothing —
// the engine is stateless and the grid bounds are constants — so the loops
// need no locking and responses on a connection are sent strictly in request
// order.
//
// # Error containment
//
// Per-message failures (malformed JSON, unknown message type, bad request
// fields) are reported to the peer and never end the loop. A failed send is
// logged and swallowed: the peer may already be gone, and the next read
// observes the dead socket. Only an explicit close frame or a receive error
// terminates a connection.
package server
