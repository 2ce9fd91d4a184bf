package ml

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/storegraph/storegraph/pkg/dataset"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syntheticOrders builds cleaned orders where a high discount drives
// returns, so a working pipeline must score well above chance.
func syntheticOrders(t *testing.T, n int) []dataset.Order {
	t.Helper()
	orderDate := time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := make([]dataset.Order, n)
	for i := range orders {
		discount := float64(i%10) / 10
		sales := 40.0 + float64(i%17)
		qty := 1 + i%4
		shipDate := orderDate.AddDate(0, 0, 2+i%5)
		returned := 0
		if discount >= 0.7 {
			returned = 1
		}
		orders[i] = dataset.Order{
			OrderID:         fmt.Sprintf("US-2017-%05d", i),
			CustomerID:      fmt.Sprintf("AB-%03d", i%20),
			ProductID:       fmt.Sprintf("OFF-BI-%04d", i%30),
			OrderDate:       &orderDate,
			ShipDate:        &shipDate,
			ShipMode:        []string{"Standard Class", "Second Class"}[i%2],
			CustomerSegment: []string{"Consumer", "Corporate", "Home Office"}[i%3],
			Region:          []string{"West", "East"}[i%2],
			Category:        "Office Supplies",
			SubCategory:     "Binders",
			Sales:           &sales,
			Quantity:        &qty,
			Discount:        &discount,
			ReturnedCount:   returned,
		}
	}
	return orders
}

func TestRun_LearnsDiscountSignal(t *testing.T) {
	orders := syntheticOrders(t, 300)
	cfg := Config{TestFraction: 0.2, Seed: 42, SearchCandidates: 2, CVFolds: 2}

	res, err := Run(orders, cfg, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.AUC < 0.9 {
		t.Errorf("AUC = %v, want > 0.9 on a clean discount signal", res.AUC)
	}
	if res.TrainRows+res.TestRows != len(orders) {
		t.Errorf("rows = %d train + %d test, want %d total", res.TrainRows, res.TestRows, len(orders))
	}
	if len(res.Predictions) != res.TestRows {
		t.Errorf("got %d predictions for %d test rows", len(res.Predictions), res.TestRows)
	}
	if len(res.Importances) == 0 {
		t.Error("no feature importances recorded")
	}
	if res.Params.Trees == 0 {
		t.Error("best hyperparameters not recorded")
	}
}

func TestRun_DeterministicForSeed(t *testing.T) {
	orders := syntheticOrders(t, 200)
	cfg := Config{TestFraction: 0.2, Seed: 42, SearchCandidates: 1, CVFolds: 2}

	r1, err := Run(orders, cfg, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, err := Run(orders, cfg, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if r1.AUC != r2.AUC {
		t.Errorf("AUC differs across runs: %v vs %v", r1.AUC, r2.AUC)
	}
	for i := range r1.Predictions {
		if r1.Predictions[i] != r2.Predictions[i] {
			t.Fatalf("prediction %d differs across runs with the same seed", i)
		}
	}
}

func TestRun_SingleClassFailsFast(t *testing.T) {
	orders := syntheticOrders(t, 100)
	for i := range orders {
		orders[i].ReturnedCount = 0
	}

	if _, err := Run(orders, Config{TestFraction: 0.2, Seed: 1, SearchCandidates: 1, CVFolds: 2}, testLogger()); err == nil {
		t.Fatal("expected an error when every label is the same class")
	}
}

func TestRun_NoOrdersFails(t *testing.T) {
	if _, err := Run(nil, Config{TestFraction: 0.2, Seed: 1}, testLogger()); err == nil {
		t.Fatal("expected an error for an empty dataset")
	}
}

func TestTopImportances_ClampsToAvailable(t *testing.T) {
	res := &Result{Importances: []FeatureImportance{{Name: "discount", Gain: 0.8}, {Name: "sales", Gain: 0.2}}}

	if got := res.TopImportances(10); len(got) != 2 {
		t.Errorf("TopImportances(10) returned %d entries, want 2", len(got))
	}
	if got := res.TopImportances(1); len(got) != 1 || got[0].Name != "discount" {
		t.Errorf("TopImportances(1) = %v, want the top feature only", got)
	}
}

func TestWritePredictionsCSV_FixedColumns(t *testing.T) {
	preds := []Prediction{
		{OrderID: "US-2017-00001", Probability: 0.912345, Predicted: true, Actual: true},
		{OrderID: "US-2017-00002", Probability: 0.1, Predicted: false, Actual: false},
	}

	var buf bytes.Buffer
	if err := WritePredictionsCSV(&buf, preds); err != nil {
		t.Fatalf("WritePredictionsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "order_id,predicted_return,predicted_proba" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "US-2017-00001,1,0.912345" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "US-2017-00002,0,0.100000" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
