// Package charts renders the evaluation artifacts to PNG files.
package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/storegraph/storegraph/pkg/ml"
	"github.com/storegraph/storegraph/pkg/reports"
)

var (
	curveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	barColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// SaveROC writes the ROC curve with a chance-level diagonal.
func SaveROC(path string, curve ml.Curve, auc float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("ROC curve (AUC = %.3f)", auc)
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(curve.FPR))
	for i := range curve.FPR {
		pts[i].X = curve.FPR[i]
		pts[i].Y = curve.TPR[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building roc line: %w", err)
	}
	line.Color = curveColor
	line.Width = vg.Points(2)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return fmt.Errorf("building diagonal: %w", err)
	}
	diag.Color = color.Gray{Y: 128}
	diag.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(line, diag)
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// SaveImportances writes a horizontal bar chart of the top-n features by
// split gain, largest at the top.
func SaveImportances(path string, imps []ml.FeatureImportance, n int) error {
	if n > len(imps) {
		n = len(imps)
	}
	if n == 0 {
		return fmt.Errorf("no feature importances to plot")
	}
	top := imps[:n]

	// plot stacks nominal categories bottom-up.
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, imp := range top {
		values[n-1-i] = imp.Gain
		names[n-1-i] = imp.Name
	}

	p := plot.New()
	p.Title.Text = "Feature importance"
	p.X.Label.Text = "Share of split gain"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("building importance bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)
	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}

// SaveClusterSizes writes a horizontal bar chart of community sizes.
func SaveClusterSizes(path string, clusters []reports.ClusterSize) error {
	if len(clusters) == 0 {
		return fmt.Errorf("no clusters to plot")
	}

	n := len(clusters)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, c := range clusters {
		values[n-1-i] = float64(c.Size)
		names[n-1-i] = fmt.Sprintf("cluster %d", c.Cluster)
	}

	p := plot.New()
	p.Title.Text = "Largest product communities"
	p.X.Label.Text = "Products"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("building cluster bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)
	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}
