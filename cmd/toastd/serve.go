package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/toastkit/toastkit/pkg/bridge"
	"github.com/toastkit/toastkit/pkg/toast"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		capacity    int
		removeDelay time.Duration
		tracing     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the toast relay server",
		Long: `Starts the engine and serves its WebSocket bridge.

Endpoints:
  GET /ws       WebSocket state relay
  GET /healthz  liveness probe
  GET /metrics  Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			opts := []toast.Option{
				toast.WithCapacity(capacity),
				toast.WithRemoveDelay(removeDelay),
				toast.WithLogger(logger),
				toast.WithMetrics(toast.NewMetrics()),
			}
			if tracing {
				opts = append(opts, toast.WithTracing(""))
			}
			store := toast.New(opts...)

			b := bridge.New(store, bridge.WithLogger(logger))
			defer b.Close()

			srv := &http.Server{
				Addr:    addr,
				Handler: b.Handler(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("toastd listening", "addr", addr, "capacity", capacity, "remove_delay", removeDelay)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&capacity, "capacity", 3, "maximum simultaneously displayed toasts")
	cmd.Flags().DurationVar(&removeDelay, "remove-delay", toast.DefaultRemoveDelay, "delay between dismissal and removal")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "emit an OpenTelemetry span per dispatch")

	return cmd
}
