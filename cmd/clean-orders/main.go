package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/storegraph/storegraph/pkg/config"
	"github.com/storegraph/storegraph/pkg/dataset"
	"github.com/storegraph/storegraph/pkg/metrics"
	"github.com/storegraph/storegraph/pkg/staging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	ordersPath := flag.String("orders", "", "Raw orders CSV (overrides config)")
	returnsPath := flag.String("returns", "", "Returns CSV (overrides config)")
	outPath := flag.String("out", "", "Cleaned orders CSV (overrides config)")
	pgDSN := flag.String("pg-dsn", "", "Postgres DSN for the staging archive (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	if *ordersPath != "" {
		cfg.Paths.OrdersCSV = *ordersPath
	}
	if *returnsPath != "" {
		cfg.Paths.ReturnsCSV = *returnsPath
	}
	if *outPath != "" {
		cfg.Paths.CleanCSV = *outPath
	}
	if *pgDSN != "" {
		cfg.PostgresDSN = *pgDSN
	}

	start := time.Now()
	reg := metrics.DefaultRegistry()

	raw, err := readOrders(cfg.Paths.OrdersCSV)
	if err != nil {
		logger.Error("reading orders", "path", cfg.Paths.OrdersCSV, "error", err)
		os.Exit(1)
	}
	returns, err := readReturns(cfg.Paths.ReturnsCSV)
	if err != nil {
		logger.Error("reading returns", "path", cfg.Paths.ReturnsCSV, "error", err)
		os.Exit(1)
	}
	logger.Info("inputs read", "orders", len(raw), "returns", len(returns))

	orders, stats := dataset.Clean(raw, returns)
	logger.Info("cleaned",
		"rows_in", stats.RowsIn,
		"rows_out", stats.RowsOut,
		"dropped_missing_id", stats.DroppedMissingID,
		"dropped_duplicate", stats.DroppedDuplicate,
		"nulled_dates", stats.NulledDates,
		"nulled_numerics", stats.NulledNumerics,
	)
	reg.RecordCleanRows(stats.RowsOut, stats.DroppedMissingID, stats.DroppedDuplicate)
	reg.RecordNulledValues(stats.NulledDates, stats.NulledNumerics)

	if err := writeOrders(cfg.Paths.CleanCSV, orders); err != nil {
		logger.Error("writing cleaned orders", "path", cfg.Paths.CleanCSV, "error", err)
		os.Exit(1)
	}
	logger.Info("cleaned orders written", "path", cfg.Paths.CleanCSV)

	if cfg.PostgresDSN != "" {
		if err := archive(logger, cfg.PostgresDSN, orders); err != nil {
			logger.Error("archiving to postgres", "error", err)
			os.Exit(1)
		}
	}

	reg.RecordStageDuration("clean", time.Since(start))
	if cfg.PushGateway != "" {
		if err := reg.Push(cfg.PushGateway, "clean-orders"); err != nil {
			logger.Warn("pushing metrics", "error", err)
		}
	}
	logger.Info("done", "duration", time.Since(start).String())
}

func readOrders(path string) ([]dataset.RawOrder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadOrders(f)
}

func readReturns(path string) ([]dataset.Return, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadReturns(f)
}

func writeOrders(path string, orders []dataset.Order) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.WriteOrders(f, orders); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func archive(logger *slog.Logger, dsn string, orders []dataset.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := staging.NewStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer store.Close()

	runID := uuid.NewString()
	n, err := store.Archive(ctx, runID, orders)
	if err != nil {
		return err
	}
	logger.Info("archived to postgres", "run_id", runID, "rows", n)
	return nil
}
