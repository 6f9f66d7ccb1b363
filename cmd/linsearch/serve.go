package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linsearch/internal/benchmark"
	"linsearch/internal/config"
	"linsearch/internal/metrics"
	"linsearch/internal/telemetry"
	"linsearch/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the linear search HTTP API",
	Long: `Starts the JSON API on the configured port. If the port cannot be bound
the next port is tried once. Prometheus metrics are served separately on
the metrics port unless it is set to 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServe(ctx, cmd.OutOrStdout(), cfg)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Interface to bind (default all)")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the API server on")
	serveCmd.Flags().Bool("port-fallback", true, "Try the next port once if the port is taken")
	serveCmd.Flags().Int("metrics-port", 2112, "Port for the Prometheus metrics server (0 disables)")

	viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("port_fallback", serveCmd.Flags().Lookup("port-fallback"))
	viper.BindPFlag("metrics_port", serveCmd.Flags().Lookup("metrics-port"))

	rootCmd.AddCommand(serveCmd)
}

// runServe binds the API, prints the banner and serves until ctx ends.
func runServe(ctx context.Context, out io.Writer, cfg config.Config) error {
	runner := benchmark.NewLinearRunner(cfg.Limits)
	m := metrics.New()
	handler := web.NewHandler(web.NewRouter(runner, cfg.Limits, m, version), m)

	srv := web.NewServer(web.ServerConfig{
		Host:              cfg.Host,
		Port:              cfg.Port,
		PortFallback:      cfg.PortFallback,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, handler)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// The metrics server stops with the API server, whichever way it ends.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	metricsDone := make(chan struct{})
	if cfg.MetricsPort > 0 {
		addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.MetricsPort))
		go func() {
			defer close(metricsDone)
			if err := telemetry.StartMetricsServer(ctx, addr, m.Handler()); err != nil {
				telemetry.LogError("Metrics server stopped", err, "addr", addr)
			}
		}()
	} else {
		close(metricsDone)
	}

	printBanner(out, srv.Port())

	err := srv.Serve(ctx)
	cancel()
	<-metricsDone
	return err
}

func printBanner(out io.Writer, port int) {
	line := "================================================"
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "   LINEAR SEARCH API SERVER")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "Server started on http://localhost:%d\n", port)
	fmt.Fprintln(out, "Available endpoints:")
	fmt.Fprintln(out, "  GET /api/health")
	fmt.Fprintln(out, "  GET /api/search?size=1000")
	fmt.Fprintln(out, "  GET /api/complexity")
	fmt.Fprintln(out, "  GET /api/batch?sizes=100,500,1000")
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "Press Ctrl+C to stop server")
	fmt.Fprintln(out, line)
}
