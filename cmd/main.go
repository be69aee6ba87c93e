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

	"github.com/UnknownOlympus/locus/internal/api"
	"github.com/UnknownOlympus/locus/internal/campus"
	"github.com/UnknownOlympus/locus/internal/config"
	"github.com/UnknownOlympus/locus/internal/matcher"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/UnknownOlympus/locus/internal/repository"
	"github.com/UnknownOlympus/locus/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	os.Exit(run())
}

// run wires and starts the application and returns the process exit code.
// Startup failures are logged and returned so that deferred cleanups still run.
func run() int {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Build the reference set once; it is shared read-only by every worker and request.
	refs, err := loadReferences(cfg.ReferencesFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load reference points", "error", err)
		return 1
	}
	logger.InfoContext(ctx, "Reference points loaded", "count", refs.Len(), "file", cfg.ReferencesFile)

	opts := []matcher.Option{matcher.WithThreshold(cfg.ThresholdMeters), matcher.WithLogger(logger)}
	if cfg.TestMode {
		logger.WarnContext(ctx, "Test mode enabled, marked addresses will be substituted")
		opts = append(opts, matcher.WithTestMode(cfg.TestMarker, ""))
	}
	addrMatcher := matcher.New(refs, opts...)

	// Initialize the database connection.
	dtb, err := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to DB", "error", err)
		return 1
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)
	if err = repo.EnsureSchema(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to prepare DB schema", "error", err)
		return 1
	}

	normalizer := service.NewNormalizationService(
		logger,
		repo,
		addrMatcher,
		appMetrics,
		cfg.Workers,
		cfg.Interval,
	)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	router := api.NewRouter(api.Deps{
		Log:       logger,
		Matcher:   addrMatcher,
		DB:        dtb,
		Registry:  reg,
		Metrics:   appMetrics,
		RateLimit: cfg.RateLimit,
	})
	go startServer(ctx, logger, router, cfg.Port)

	go normalizer.Run(ctx)

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")
	logger.InfoContext(ctx, "Application stopped gracefully.")

	return 0
}

// loadReferences returns the YAML reference table at path, or the built-in campus table.
func loadReferences(path string) (*matcher.ReferenceSet, error) {
	if path == "" {
		return campus.Default()
	}
	return campus.LoadFile(path)
}

// startServer serves health, metrics and lookup endpoints until ctx is canceled.
func startServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) {
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(readTimeout)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}()

	log.InfoContext(ctx, "Starting HTTP server", "port", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "HTTP server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
