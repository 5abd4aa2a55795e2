package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gridview-dev/gridview/pkg/grid"
	"github.com/gridview-dev/gridview/pkg/middleware"
	"github.com/gridview-dev/gridview/pkg/server"
)

// logLevelEnv overrides the logging verbosity at startup.
const logLevelEnv = "GRIDVIEW_LOG"

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the grid slice server",
		Long: `Start the WebSocket server. The grid endpoint is /ws; /metrics exposes
Prometheus metrics and /healthz a liveness check. Logging verbosity is read
from the ` + logLevelEnv + ` environment variable (debug, info, warn, error).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			slog.SetDefault(logger)

			engine := grid.NewEngine(grid.DefaultBounds(), nil)

			cfg := server.DefaultConfig()
			if addr != "" {
				cfg.Addr = addr
			}
			srv := server.New(cfg, engine)

			r := chi.NewRouter()
			r.Use(middleware.Logging(logger))
			r.Use(middleware.Prometheus())
			r.Handle("/metrics", promhttp.Handler())
			r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			srv.SetHandler(r)

			// Bind failure surfaces here and exits non-zero via main.
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default 127.0.0.1:4001)")

	return cmd
}

// newLogger builds a text logger on stderr with the verbosity from the
// environment; unset or unrecognized values mean info.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv(logLevelEnv)) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
