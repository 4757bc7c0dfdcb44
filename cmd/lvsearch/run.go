package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
)

type flags struct {
	config      string
	parallel    int
	verbose     bool
	json        bool
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("lvsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "./lvsearch.toml", "Path to scenario file")
	fs.IntVar(&f.parallel, "parallel", 0, "Scenarios to run at once (0 = run.parallel from config)")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&f.json, "json", false, "Log as JSON")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address until interrupted")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.parallel < 0 {
		return f, fmt.Errorf("-parallel must be >= 0, got %d", f.parallel)
	}
	return f, nil
}

// run is main without os.Exit. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := scenario.Load(f.config)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	if f.parallel > 0 {
		cfg.Run.Parallel = f.parallel
	}

	logger := newLogger(cfg.Log, f, stderr).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		logger.Error("failed to set up metrics", "error", err)
		return 1
	}

	outcomes, runErr := execute(ctx, cfg, logger, rec)
	for _, o := range outcomes {
		fmt.Fprintln(stdout, o)
	}
	if runErr != nil {
		logger.Error("run failed", "error", runErr)
	}

	if f.metricsAddr != "" {
		if err := serveMetrics(ctx, f.metricsAddr, reg, logger); err != nil {
			logger.Error("metrics server failed", "error", err)
			return 1
		}
	}
	if runErr != nil {
		return 1
	}
	return 0
}

func newLogger(c scenario.LogConfig, f flags, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if f.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if f.json || strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// execute runs every scenario, at most cfg.Run.Parallel at a time. Outcomes
// keep file order. A failing scenario does not stop the others; the first
// error is returned.
func execute(ctx context.Context, cfg *scenario.File, logger *slog.Logger, rec *metrics.Recorder) ([]scenario.Outcome, error) {
	outcomes := make([]scenario.Outcome, len(cfg.Scenarios))
	var g errgroup.Group
	g.SetLimit(cfg.Run.Parallel)

	for i, s := range cfg.Scenarios {
		i, s := i, s
		g.Go(func() error {
			log := logger.With("scenario", s.Name, "algorithm", s.Algorithm)
			out, err := scenario.Run(ctx, s,
				search.WithLogger(log),
				search.WithObserver(rec.Observer(s.Algorithm)),
			)
			outcomes[i] = out
			if err != nil {
				log.Error("scenario failed", "error", err)
				return err
			}
			log.Info("scenario finished",
				"found", out.Found,
				"cost", out.Cost,
				"path_len", len(out.Path),
				"expanded", out.Stats.Expanded,
				"elapsed", out.Elapsed,
			)
			return nil
		})
	}
	return outcomes, g.Wait()
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

// serveMetrics blocks until ctx is done, then shuts the server down.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsMux(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
