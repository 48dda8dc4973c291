package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/deepankarm/jsonguide/pkg/ginguide"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(ro *rootOptions) *cobra.Command {
	var (
		addr         string
		maxTextBytes int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve completions over HTTP",
		Long: `serve starts the HTTP completion service. Schemas listed in the
configuration file can be referred to by name in requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				ro.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("max-text-bytes") {
				ro.cfg.Server.MaxTextBytes = maxTextBytes
			}
			if err := ro.cfg.Validate(); err != nil {
				return err
			}
			if ro.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, newServer(ro.cfg, ro.logger, prometheus.DefaultRegisterer), ro.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().IntVar(&maxTextBytes, "max-text-bytes", 0, "request text limit (overrides server.max_text_bytes)")
	return cmd
}

// newServer wires the completion API and every configured schema into an
// http.Server. Metrics are registered on reg.
func newServer(cfg *Config, logger *slog.Logger, reg prometheus.Registerer) *http.Server {
	opts := []ginguide.Option{
		ginguide.WithLogger(logger),
		ginguide.WithMaxTextBytes(cfg.Server.MaxTextBytes),
		ginguide.WithRegisterer(reg),
		ginguide.WithDescription("Schema-guided completion of partial JSON output"),
	}
	for name, node := range cfg.Schemas {
		opts = append(opts, ginguide.WithSchema(name, node))
	}
	api := ginguide.New("jsonguide", version, opts...)

	router := gin.New()
	router.Use(gin.Recovery())
	api.Routes(router)

	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
