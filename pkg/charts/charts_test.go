package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/storegraph/storegraph/pkg/ml"
	"github.com/storegraph/storegraph/pkg/reports"
)

// assertPNG fails unless path holds a non-empty file with a PNG header.
func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) < 8 {
		t.Fatalf("%s is empty", path)
	}
	if string(data[1:4]) != "PNG" {
		t.Fatalf("%s does not start with a PNG signature", path)
	}
}

func TestSaveROC_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roc.png")
	curve := ml.Curve{FPR: []float64{0, 0, 0.5, 1}, TPR: []float64{0, 0.5, 1, 1}}

	if err := SaveROC(path, curve, 0.875); err != nil {
		t.Fatalf("SaveROC: %v", err)
	}
	assertPNG(t, path)
}

func TestSaveImportances_WritesTopN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importances.png")
	imps := []ml.FeatureImportance{
		{Name: "discount", Gain: 0.4},
		{Name: "cust_ret_rate", Gain: 0.3},
		{Name: "sales", Gain: 0.2},
		{Name: "quantity", Gain: 0.1},
	}

	if err := SaveImportances(path, imps, 3); err != nil {
		t.Fatalf("SaveImportances: %v", err)
	}
	assertPNG(t, path)
}

func TestSaveImportances_EmptyFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importances.png")
	if err := SaveImportances(path, nil, 10); err == nil {
		t.Fatal("expected an error with no importances")
	}
}

func TestSaveClusterSizes_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.png")
	clusters := []reports.ClusterSize{
		{Cluster: 4, Size: 120},
		{Cluster: 1, Size: 80},
		{Cluster: 9, Size: 33},
	}

	if err := SaveClusterSizes(path, clusters); err != nil {
		t.Fatalf("SaveClusterSizes: %v", err)
	}
	assertPNG(t, path)
}
