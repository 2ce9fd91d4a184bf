package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/storegraph/storegraph/pkg/artifacts"
	"github.com/storegraph/storegraph/pkg/charts"
	"github.com/storegraph/storegraph/pkg/config"
	"github.com/storegraph/storegraph/pkg/dataset"
	"github.com/storegraph/storegraph/pkg/graph"
	"github.com/storegraph/storegraph/pkg/metrics"
	"github.com/storegraph/storegraph/pkg/ml"
)

const topFeatures = 10

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	cleanPath := flag.String("clean", "", "Cleaned orders CSV (overrides config)")
	writeBack := flag.Bool("write-back", false, "Write predictions onto Order nodes")
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
	if *writeBack {
		cfg.ML.WriteBack = true
	}

	start := time.Now()
	reg := metrics.DefaultRegistry()

	orders, err := readCleanOrders(cfg.Paths.CleanCSV)
	if err != nil {
		logger.Error("reading cleaned orders", "path", cfg.Paths.CleanCSV, "error", err)
		os.Exit(1)
	}
	logger.Info("inputs read", "orders", len(orders))

	res, err := ml.Run(orders, ml.Config{
		TestFraction:     cfg.ML.TestFraction,
		Seed:             cfg.ML.Seed,
		SearchCandidates: cfg.ML.SearchCandidates,
		CVFolds:          cfg.ML.CVFolds,
	}, logger)
	if err != nil {
		logger.Error("training", "error", err)
		os.Exit(1)
	}
	logger.Info("model evaluated",
		"test_auc", res.AUC,
		"cv_auc", res.CVScore,
		"true_positives", res.Confusion.TruePositive,
		"false_positives", res.Confusion.FalsePositive,
		"true_negatives", res.Confusion.TrueNegative,
		"false_negatives", res.Confusion.FalseNegative,
	)
	reg.RecordModel(res.AUC, res.CVScore, res.TrainRows, res.TestRows)

	out, err := artifacts.NewStore(cfg.Paths.OutputDir, logger)
	if err != nil {
		logger.Error("creating run directory", "error", err)
		os.Exit(1)
	}

	if err := writePredictions(out, res.Predictions); err != nil {
		logger.Error("writing predictions", "error", err)
		os.Exit(1)
	}
	if err := charts.SaveROC(out.Path("roc_curve.png"), res.ROC, res.AUC); err != nil {
		logger.Error("rendering roc chart", "error", err)
		os.Exit(1)
	}
	if err := charts.SaveImportances(out.Path("feature_importances.png"), res.Importances, topFeatures); err != nil {
		logger.Error("rendering importance chart", "error", err)
		os.Exit(1)
	}
	logger.Info("artifacts written", "run_id", out.RunID(), "dir", out.Dir())

	ctx := context.Background()
	if cfg.ML.WriteBack {
		if err := annotateGraph(ctx, cfg, res.Predictions, logger); err != nil {
			logger.Error("writing predictions to graph", "error", err)
			os.Exit(1)
		}
	}

	if cfg.S3.Bucket != "" {
		uploader, err := artifacts.NewUploader(ctx, cfg.S3.Bucket, cfg.S3.Prefix, cfg.S3.Region, cfg.S3.Endpoint)
		if err != nil {
			logger.Error("building s3 uploader", "error", err)
			os.Exit(1)
		}
		if err := uploader.UploadAll(ctx, out); err != nil {
			logger.Error("uploading artifacts", "error", err)
			os.Exit(1)
		}
	}

	reg.RecordStageDuration("predict", time.Since(start))
	if cfg.PushGateway != "" {
		if err := reg.Push(cfg.PushGateway, "predict-returns"); err != nil {
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

func writePredictions(out *artifacts.Store, preds []ml.Prediction) error {
	f, err := os.Create(out.Path("order_return_predictions.csv"))
	if err != nil {
		return err
	}
	if err := ml.WritePredictionsCSV(f, preds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func annotateGraph(ctx context.Context, cfg config.Config, preds []ml.Prediction, logger *slog.Logger) error {
	store, err := graph.New(ctx, graph.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	rows := make([]graph.OrderPrediction, len(preds))
	for i, p := range preds {
		rows[i] = graph.OrderPrediction{
			OrderID:     p.OrderID,
			Returned:    p.Predicted,
			Probability: p.Probability,
		}
	}
	updated, err := graph.WritePredictions(ctx, store, rows, cfg.LoadBatch)
	if err != nil {
		return err
	}
	logger.Info("graph annotated", "orders_updated", updated)
	return nil
}
