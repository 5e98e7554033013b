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
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toastd",
		Short: "Toast notification relay daemon",
		Long: `toastd hosts a toast notification state engine and relays its
state to WebSocket clients.

The engine keeps a bounded, ordered list of transient notifications
with delayed, cancellable removal. Clients receive the full state as
JSON on every change and can dismiss toasts over the same socket.`,
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

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("toastd %s (%s)\n", version, commit)
		},
	}
}
