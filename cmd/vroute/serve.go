package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/vango-dev/vroute"
	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/pkg/assets"
	"github.com/vango-dev/vroute/pkg/bridge"
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/devserver"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/telemetry"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		assetsF string
		metrics bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		Long: `Serve the app to browsers. Each tab gets a server-side session that
mirrors its location over a WebSocket.

Examples:
  vroute serve
  vroute serve --port=8080 --metrics
  vroute serve --assets=s3://my-bucket/site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if assetsF != "" {
				cfg.Dev.Assets = assetsF
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Dev.Metrics = metrics
			}
			if cmd.Flags().Changed("tracing") {
				cfg.Dev.Tracing = tracing
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&assetsF, "assets", "", "Asset directory or s3://bucket/prefix")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Log a trace span per navigation")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	opts := appOptions(cfg, logger)

	var observers []router.Observer
	registry := prometheus.NewRegistry()
	if cfg.Dev.Metrics {
		observers = append(observers, telemetry.Metrics(telemetry.WithRegistry(registry)))
	}
	if cfg.Dev.Tracing {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(newSpanLogger(logger)))
		defer tp.Shutdown(context.Background())
		observers = append(observers, telemetry.Tracer(telemetry.WithTracerProvider(tp)))
	}
	if len(observers) > 0 {
		opts.Observer = telemetry.Multi(observers...)
	}

	// Fail on a bad route list before listening.
	probe, err := vroute.New(browser.NewMemory("/"), opts)
	if err != nil {
		return err
	}
	probe.Close()

	var src assets.Source
	if loc := cfg.AssetsLocation(); loc != "" {
		src, err = assets.Parse(ctx, loc)
		if err != nil {
			return err
		}
		logger.Info("serving assets", "source", src.String())
	}

	srv := devserver.New(devserver.Options{
		Addr:     cfg.DevAddress(),
		Mode:     cfg.LocationMode(),
		Base:     cfg.Base,
		Assets:   src,
		Metrics:  cfg.Dev.Metrics,
		Gatherer: registry,
		Title:    cfg.Name,
		Logger:   logger,
		Factory: func(win browser.Window) (bridge.Instance, error) {
			return vroute.New(win, opts)
		},
	})

	fmt.Printf("\033[32m✓\033[0m Serving %d routes at http://%s\n", len(probe.Routes()), cfg.DevAddress())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.Info("dev server stopped")
	return nil
}
