package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/storegraph/storegraph/pkg/artifacts"
	"github.com/storegraph/storegraph/pkg/charts"
	"github.com/storegraph/storegraph/pkg/config"
	"github.com/storegraph/storegraph/pkg/graph"
	"github.com/storegraph/storegraph/pkg/metrics"
	"github.com/storegraph/storegraph/pkg/reports"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	skipAlgos := flag.Bool("skip-algorithms", false, "Skip PageRank and Louvain, only run aggregations")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	reg := metrics.DefaultRegistry()
	ctx := context.Background()

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

	if !*skipAlgos {
		prStart := time.Now()
		pr, err := graph.RunPageRank(ctx, store, logger)
		if err != nil {
			logger.Error("running pagerank", "error", err)
			os.Exit(1)
		}
		reg.RecordPageRank(pr.RanIterations)
		reg.ObserveAnalyticsQuery("pagerank", time.Since(prStart))

		lvStart := time.Now()
		lv, err := graph.RunLouvain(ctx, store, logger)
		if err != nil {
			logger.Error("running louvain", "error", err)
			os.Exit(1)
		}
		reg.RecordLouvain(lv.CommunityCount, lv.Modularity)
		reg.ObserveAnalyticsQuery("louvain", time.Since(lvStart))
	}

	repStart := time.Now()
	rep, err := reports.Run(ctx, store)
	if err != nil {
		logger.Error("running aggregations", "error", err)
		os.Exit(1)
	}
	reg.ObserveAnalyticsQuery("aggregations", time.Since(repStart))

	rendered := reports.Render(rep)
	fmt.Println(rendered)

	out, err := artifacts.NewStore(cfg.Paths.OutputDir, logger)
	if err != nil {
		logger.Error("creating run directory", "error", err)
		os.Exit(1)
	}
	if err := out.WriteFile("report.txt", []byte(rendered)); err != nil {
		logger.Error("writing report", "error", err)
		os.Exit(1)
	}
	if len(rep.TopClusters) > 0 {
		if err := charts.SaveClusterSizes(out.Path("clusters.png"), rep.TopClusters); err != nil {
			logger.Error("rendering cluster chart", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("artifacts written", "run_id", out.RunID(), "dir", out.Dir())

	reg.RecordStageDuration("analytics", time.Since(start))
	if cfg.PushGateway != "" {
		if err := reg.Push(cfg.PushGateway, "run-analytics"); err != nil {
			logger.Warn("pushing metrics", "error", err)
		}
	}
	logger.Info("done", "duration", time.Since(start).String())
}
