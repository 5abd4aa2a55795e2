package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gridview-dev/gridview/pkg/protocol"
)

// Config holds configuration for the WebSocket server.
type Config struct {
	// Addr is the address to listen on.
	// Default: "127.0.0.1:4001".
	Addr string

	// Path is the WebSocket upgrade path.
	// Default: "/ws".
	Path string

	// ReadBufferSize is the WebSocket read buffer size.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	// Default: 4096.
	WriteBufferSize int

	// MaxMessageSize is the inbound message size limit.
	// Default: protocol.MaxMessageSize (16 MiB).
	MaxMessageSize int64

	// ReadTimeout bounds the wait for the next inbound message. Zero means
	// no deadline: an idle viewer keeps its connection.
	// Default: 0.
	ReadTimeout time.Duration

	// WriteTimeout bounds a single outbound write.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 30 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds reading the request headers before upgrade.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// CheckOrigin validates the upgrade request origin.
	// Default: allow all origins; the service binds to loopback.
	CheckOrigin func(r *http.Request) bool
}

// DefaultConfig returns a Config with the default values filled in.
func DefaultConfig() *Config {
	return &Config{
		Addr:              "127.0.0.1:4001",
		Path:              "/ws",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		MaxMessageSize:    protocol.MaxMessageSize,
		ReadTimeout:       0,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		CheckOrigin:       func(*http.Request) bool { return true },
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Addr == "" {
		out.Addr = defaults.Addr
	}
	if out.Path == "" {
		out.Path = defaults.Path
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = defaults.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = defaults.WriteBufferSize
	}
	if out.MaxMessageSize == 0 {
		out.MaxMessageSize = defaults.MaxMessageSize
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = defaults.CheckOrigin
	}
	return &out
}

// SameOriginCheck validates that the upgrade request origin matches the host.
// Use it as Config.CheckOrigin when the service is exposed beyond loopback.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No Origin header (same-origin request or a non-browser client).
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
