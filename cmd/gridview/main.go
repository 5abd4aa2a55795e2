package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridview",
		Short: "WebSocket slice server for a virtualized grid",
		Long: `Gridview serves a virtualized-grid client over a persistent WebSocket
connection. The client reports its viewport (screen size, scroll offsets,
cell sizing); the server computes the visible slice of a 10,000,000 x 1,000
grid with buffer margins and safety caps and returns the cell labels for it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
