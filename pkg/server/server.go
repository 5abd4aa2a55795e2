package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridview-dev/gridview/pkg/grid"
)

// tracerName identifies this package's spans with the global tracer provider.
const tracerName = "gridview/server"

// Server is the HTTP/WebSocket server for the grid slice service.
type Server struct {
	// Slice engine, shared by all connections (stateless)
	engine *grid.Engine

	// HTTP handler for non-WebSocket requests (metrics, health)
	handler http.Handler

	// Configuration
	config *Config

	// WebSocket upgrader
	upgrader websocket.Upgrader

	// Observability
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger

	// HTTP server
	httpServer *http.Server
}

// New creates a new Server over the given engine. A nil config uses defaults;
// unset config fields are filled from the defaults.
func New(config *Config, engine *grid.Engine) *Server {
	config = config.withDefaults()

	return &Server{
		engine: engine,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		metrics: DefaultMetrics(),
		tracer:  otel.Tracer(tracerName),
		logger:  slog.Default().With("component", "server"),
	}
}

// SetHandler sets the HTTP handler for non-WebSocket requests.
func (s *Server) SetHandler(h http.Handler) {
	s.handler = h
}

// SetMetrics replaces the metrics instruments. Tests use this with a fresh
// registry.
func (s *Server) SetMetrics(m *Metrics) {
	s.metrics = m
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Engine returns the slice engine.
func (s *Server) Engine() *grid.Engine {
	return s.engine
}

// ServeHTTP implements http.Handler: upgrade requests on the WebSocket path,
// everything else to the mounted handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == s.config.Path {
		s.HandleWebSocket(w, r)
		return
	}

	handler := s.handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	handler.ServeHTTP(w, r)
}

// HandleWebSocket upgrades the request and runs the connection loop on the
// handler goroutine. One goroutine per connection is the whole concurrency
// model: connections share only the immutable engine.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	ws.SetReadLimit(s.config.MaxMessageSize)

	s.metrics.connectionsTotal.Inc()
	s.metrics.connectionsActive.Inc()
	defer s.metrics.connectionsActive.Dec()

	c := &conn{
		ws:      ws,
		engine:  s.engine,
		config:  s.config,
		metrics: s.metrics,
		tracer:  s.tracer,
		logger:  s.logger.With("remote", ws.RemoteAddr().String()),
	}
	c.run()
}

// Run starts the server and blocks until shutdown. A failure to bind the
// listen address is fatal and returned immediately.
func (s *Server) Run() error {
	if s.httpServer != nil {
		return ErrAlreadyRunning
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			"addr", s.config.Addr,
			"path", s.config.Path)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return ErrNotRunning
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}
