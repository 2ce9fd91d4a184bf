package ml

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var predictionColumns = []string{"order_id", "predicted_return", "predicted_proba"}

// WritePredictionsCSV writes evaluation-set predictions in a fixed
// column order.
func WritePredictionsCSV(w io.Writer, preds []Prediction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(predictionColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range preds {
		label := "0"
		if p.Predicted {
			label = "1"
		}
		row := []string{
			p.OrderID,
			label,
			strconv.FormatFloat(p.Probability, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing prediction for %s: %w", p.OrderID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
