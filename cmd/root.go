package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/config"
	"github.com/devdhirendra/enhanced-ns-sub000/internal/core/logger"
	"github.com/devdhirendra/enhanced-ns-sub000/internal/telemetry"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/api"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/tokenstore"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// app carries what every command shares. The client is built lazily so
// commands that never talk to the backend do not touch the token file.
type app struct {
	cfg config.Config

	logger   *zap.Logger
	client   *api.Client
	observer *api.PrometheusObserver
	cleanups []func(context.Context) error
}

func (a *app) setup() error {
	if a.logger == nil {
		a.logger = logger.NewLogger(a.cfg.LogLevel)
	}

	shutdown := telemetry.Setup("netops-cli", a.cfg.OTLPEndpoint, a.cfg.OTLPInsecure, a.logger)
	a.cleanups = append(a.cleanups, shutdown)

	if a.cfg.MetricsAddr != "" {
		if err := a.serveMetrics(); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) teardown() {
	if a.logger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](ctx); err != nil {
			a.logger.Warn("cleanup failed", zap.Error(err))
		}
	}
	a.cleanups = nil
	_ = a.logger.Sync()
}

// serveMetrics exposes the client's request metrics for the life of the command.
func (a *app) serveMetrics() error {
	registry := prometheus.NewRegistry()
	observer := api.NewPrometheusObserver()
	if err := observer.Register(registry); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: a.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	a.logger.Info("serving client metrics", zap.String("addr", a.cfg.MetricsAddr))

	a.observer = observer
	a.cleanups = append(a.cleanups, server.Shutdown)
	return nil
}

func (a *app) apiClient() (*api.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	path := a.cfg.TokenFile
	if path == "" {
		var err error
		if path, err = tokenstore.DefaultPath(); err != nil {
			return nil, fmt.Errorf("token file: %w", err)
		}
	}

	httpClient := &http.Client{
		Timeout:   a.cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	cfg := api.Config{
		BaseURL:    a.cfg.APIURL,
		HTTPClient: httpClient,
		Tokens:     tokenstore.NewFileStore(path),
		Logger:     a.logger,
	}
	if a.observer != nil {
		cfg.Observer = a.observer
	}
	a.client = api.New(cfg)
	return a.client, nil
}

// NewRootCommand builds the netops command tree on top of cfg. Flags
// override the loaded values.
func NewRootCommand(cfg config.Config) *cobra.Command {
	rootCmd, _ := newRootCommand(cfg)
	return rootCmd
}

func newRootCommand(cfg config.Config) (*cobra.Command, *app) {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "netops",
		Short:         "Back-office client for the ISP gateway API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.APIURL, "api-url", cfg.APIURL, "Gateway base URL including the /api prefix")
	flags.StringVar(&a.cfg.TokenFile, "token-file", cfg.TokenFile, "Where the session token is kept")
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&a.cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve client metrics on this address while running")

	rootCmd.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newStatusCommand(a),
		newEndpointsCommand(a),
		newCallCommand(a),
		newDashboardCommand(a),
		newSandboxCommand(a),
	)
	return rootCmd, a
}

// run executes args against a fresh command tree and releases what the
// command set up, whether it failed or not.
func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	rootCmd, a := newRootCommand(cfg)
	defer a.teardown()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.ExecuteContext(ctx)
}

func Execute(ctx context.Context) {
	if err := run(ctx, config.Load(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, raw []byte) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	_, err := fmt.Fprintln(w, pretty.String())
	return err
}
