package graph

import (
	"context"
	"fmt"
)

// OrderPrediction is a model output destined for an Order node.
type OrderPrediction struct {
	OrderID     string
	Returned    bool
	Probability float64
}

const writePredictionsCypher = `
UNWIND $rows AS row
MATCH (o:Order {id: row.order_id})
SET o.predicted_return = row.predicted_return,
    o.predicted_prob = row.predicted_prob
RETURN count(*) AS updated`

// WritePredictions annotates Order nodes with predicted label and
// probability. Returns the number of orders updated; predictions for
// unknown orders are skipped.
func WritePredictions(ctx context.Context, r Runner, preds []OrderPrediction, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 1000
	}

	updated := 0
	for start := 0; start < len(preds); start += batchSize {
		batch := preds[start:min(start+batchSize, len(preds))]
		rows := make([]map[string]any, len(batch))
		for i, p := range batch {
			rows[i] = map[string]any{
				"order_id":         p.OrderID,
				"predicted_return": p.Returned,
				"predicted_prob":   p.Probability,
			}
		}
		records, err := r.Run(ctx, writePredictionsCypher, map[string]any{"rows": rows})
		if err != nil {
			return updated, fmt.Errorf("writing predictions batch: %w", err)
		}
		if len(records) > 0 {
			updated += int(asInt64(records[0]["updated"]))
		}
	}
	return updated, nil
}
