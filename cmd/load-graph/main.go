package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/storegraph/storegraph/pkg/config"
	"github.com/storegraph/storegraph/pkg/dataset"
	"github.com/storegraph/storegraph/pkg/graph"
	"github.com/storegraph/storegraph/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	cleanPath := flag.String("clean", "", "Cleaned orders CSV (overrides config)")
	peoplePath := flag.String("people", "", "People CSV (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	if *cleanPath != "" {
		cfg.Paths.CleanCSV = *cleanPath
	}
	if *peoplePath != "" {
		cfg.Paths.PeopleCSV = *peoplePath
	}

	start := time.Now()
	reg := metrics.DefaultRegistry()
	ctx := context.Background()

	orders, err := readCleanOrders(cfg.Paths.CleanCSV)
	if err != nil {
		logger.Error("reading cleaned orders", "path", cfg.Paths.CleanCSV, "error", err)
		os.Exit(1)
	}
	people, err := readPeople(cfg.Paths.PeopleCSV)
	if err != nil {
		logger.Error("reading people", "path", cfg.Paths.PeopleCSV, "error", err)
		os.Exit(1)
	}
	logger.Info("inputs read", "orders", len(orders), "people", len(people))

	store, err := graph.New(ctx, graph.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		logger.Error("connecting to neo4j", "uri", cfg.Neo4j.URI, "error", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	if err := graph.EnsureSchema(ctx, store); err != nil {
		logger.Error("declaring schema", "error", err)
		os.Exit(1)
	}

	loader := graph.NewLoader(store, cfg.LoadBatch, logger)
	var stats graph.LoadStats

	if err := loader.LoadPeople(ctx, people, &stats); err != nil {
		logger.Error("loading people", "error", err)
		os.Exit(1)
	}
	if err := loader.LoadOrders(ctx, orders, &stats); err != nil {
		logger.Error("loading orders", "error", err)
		os.Exit(1)
	}

	reg.RecordNodesMerged("Person", stats.PeopleRows)
	reg.RecordNodesMerged("Order", stats.OrderRows)
	for relType, created := range stats.RelsCreated {
		reg.RecordRelationships(relType, created, stats.RelsSkipped[relType])
	}

	reg.RecordStageDuration("load", time.Since(start))
	if cfg.PushGateway != "" {
		if err := reg.Push(cfg.PushGateway, "load-graph"); err != nil {
			logger.Warn("pushing metrics", "error", err)
		}
	}
	logger.Info("done", "duration", time.Since(start).String())
}

func readCleanOrders(path string) ([]dataset.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadCleanOrders(f)
}

func readPeople(path string) ([]dataset.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadPeople(f)
}
