package protocol

// MaxMessageSize bounds a single WebSocket message in either direction.
// Generous because a fully buffered slice response (1000 rows × 200 columns
// of labels) is large; 16 MiB covers it with room to spare.
const MaxMessageSize int64 = 16 << 20
