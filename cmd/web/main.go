package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/datastore"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/server"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/ui/templates"
)

const (
	version       = "1.0.0"
	renderTimeout = 10 * time.Second
	cacheMaxAge   = "public, max-age=300"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sales-dashboard",
		Short:         "Sales channel dashboard over the transactions CSV batches",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Load the data and serve the dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		newExportCmd(),
	)

	return root
}

// newDashboardHandler renders the page shell; charts fill in over SSE.
func newDashboardHandler(view templates.DashboardView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", cacheMaxAge)
		if err := templates.Dashboard(view).Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func sourcesFrom(cfg config.DatabaseConfig) datastore.Sources {
	transactionsDir, countryCodes, customers, productInfo := cfg.Sources()
	return datastore.Sources{
		TransactionsDir:  transactionsDir,
		CountryCodesFile: countryCodes,
		CustomersFile:    customers,
		ProductInfoFile:  productInfo,
	}
}

// loadDataset reads and merges every source within the configured load
// timeout. metrics may be nil.
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*datastore.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Database.LoadTimeout)
	defer cancel()

	ctx, span := observability.StartSpan(ctx, "dataset.load")
	defer func() {
		span.Finish()
		span.Log(logger)
	}()

	src := sourcesFrom(cfg.Database)
	span.SetTag("transactions_dir", src.TransactionsDir)

	start := time.Now()
	ds, err := datastore.Load(ctx, src, logger)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	took := time.Since(start)

	span.SetTag("records", strconv.Itoa(ds.Stats.Records))
	if metrics != nil {
		metrics.RecordDataset(ds.Stats, took)
	}

	logger.Info("CSV data loaded successfully",
		"records", ds.Stats.Records,
		"unmatched_customers", ds.Stats.UnmatchedCustomers,
		"missing_age", ds.Stats.MissingAge,
		"duration", took,
	)
	return ds, nil
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := observability.NewLogger(cfg.Logger, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", version,
		"addr", cfg.Address(),
		"data_dir", cfg.Database.Dir,
	)

	metrics := observability.NewMetrics()

	ds, err := loadDataset(ctx, cfg, logger, metrics)
	if err != nil {
		return fmt.Errorf("failed to load CSV data: %w", err)
	}

	analytics := services.NewAnalytics(logger)
	analytics.LoadDataset(ds)

	templateHandlers := &server.TemplateHandlers{
		Dashboard: newDashboardHandler(templates.NewDashboardView(cfg.Dashboard)),
	}

	srv := server.NewServer(analytics, logger, templateHandlers,
		server.WithMetrics(metrics),
		server.WithCharts(cfg.Dashboard.Charts),
	)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger, metrics),
	)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      middlewareChain(srv),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down analytics service", "records", analytics.Stats()["record_count"])
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("application stopped gracefully")
	return nil
}
