package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storegraph/storegraph/pkg/dataset"
)

// Load statements. Nodes are merged on their identity key with non-key
// attributes set only on first creation, so re-running an import does not
// overwrite drift from other writers. Relationships MATCH their endpoints:
// a row whose endpoint is missing creates nothing and is counted as
// skipped, not raised.
//
// Region is deliberately matched, not merged, by the order load; regions
// come from the people file, which must load first.
const (
	mergePeopleCypher = `
UNWIND $rows AS row
MERGE (m:Manager {name: row.manager})
MERGE (r:Region {name: row.region})
MERGE (m)-[:MANAGES]->(r)
RETURN count(*) AS merged`

	mergeCustomersCypher = `
UNWIND $rows AS row
MERGE (c:Customer {id: row.customer_id})
ON CREATE SET c.name = row.customer_name,
              c.segment = row.customer_segment
RETURN count(*) AS merged`

	mergeProductsCypher = `
UNWIND $rows AS row
MERGE (p:Product {id: row.product_id})
ON CREATE SET p.name = row.product_name,
              p.category = row.category,
              p.subCategory = row.sub_category
RETURN count(*) AS merged`

	mergeOrdersCypher = `
UNWIND $rows AS row
MERGE (o:Order {id: row.order_id})
ON CREATE SET o.orderDate = row.order_date,
              o.shipDate = row.ship_date,
              o.shipMode = row.ship_mode,
              o.sales = row.sales,
              o.quantity = row.quantity,
              o.discount = row.discount,
              o.profit = row.profit,
              o.returned = row.returned
RETURN count(*) AS merged`

	placedCypher = `
UNWIND $rows AS row
MATCH (c:Customer {id: row.customer_id})
MATCH (o:Order {id: row.order_id})
MERGE (c)-[:PLACED]->(o)
RETURN count(*) AS created`

	shippedToCypher = `
UNWIND $rows AS row
MATCH (o:Order {id: row.order_id})
MATCH (r:Region {name: row.region})
MERGE (o)-[:SHIPPED_TO]->(r)
RETURN count(*) AS created`

	// CONTAINS matches the order by the order's own identifier.
	containsCypher = `
UNWIND $rows AS row
MATCH (o:Order {id: row.order_id})
MATCH (p:Product {id: row.product_id})
MERGE (o)-[ct:CONTAINS]->(p)
ON CREATE SET ct.quantity = row.quantity,
              ct.sales = row.sales
RETURN count(*) AS created`
)

// LoadStats counts merge and relationship outcomes across one load run.
// Skipped relationships are rows whose MATCH found no endpoint.
type LoadStats struct {
	PeopleRows  int
	OrderRows   int
	RelsCreated map[string]int
	RelsSkipped map[string]int
}

// Loader materializes cleaned records as graph entities and relationships
// in batches.
type Loader struct {
	runner Runner
	batch  int
	log    *slog.Logger
}

// NewLoader returns a Loader issuing UNWIND batches of the given size.
func NewLoader(runner Runner, batchSize int, log *slog.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Loader{runner: runner, batch: batchSize, log: log}
}

// LoadPeople merges managers, regions, and MANAGES relationships. This must
// run before LoadOrders: the order load matches regions by name.
func (l *Loader) LoadPeople(ctx context.Context, people []dataset.Person, stats *LoadStats) error {
	rows := make([]map[string]any, 0, len(people))
	for _, p := range people {
		if p.Name == "" || p.Region == "" {
			continue
		}
		rows = append(rows, map[string]any{
			"manager": p.Name,
			"region":  p.Region,
		})
	}
	stats.PeopleRows = len(rows)

	for start := 0; start < len(rows); start += l.batch {
		batch := rows[start:min(start+l.batch, len(rows))]
		if _, err := l.runner.Run(ctx, mergePeopleCypher, map[string]any{"rows": batch}); err != nil {
			return fmt.Errorf("merging people batch: %w", err)
		}
	}
	l.log.Info("people loaded", "rows", len(rows))
	return nil
}

// LoadOrders merges customer, order, and product nodes, then creates the
// PLACED, SHIPPED_TO, and CONTAINS relationships. Node merges complete
// before any relationship statement runs.
func (l *Loader) LoadOrders(ctx context.Context, orders []dataset.Order, stats *LoadStats) error {
	rows := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow(o))
	}
	stats.OrderRows = len(rows)
	if stats.RelsCreated == nil {
		stats.RelsCreated = make(map[string]int)
	}
	if stats.RelsSkipped == nil {
		stats.RelsSkipped = make(map[string]int)
	}

	nodeStatements := []struct {
		name   string
		cypher string
	}{
		{"customers", mergeCustomersCypher},
		{"products", mergeProductsCypher},
		{"orders", mergeOrdersCypher},
	}
	relStatements := []struct {
		relType string
		cypher  string
	}{
		{"PLACED", placedCypher},
		{"SHIPPED_TO", shippedToCypher},
		{"CONTAINS", containsCypher},
	}

	for start := 0; start < len(rows); start += l.batch {
		batch := rows[start:min(start+l.batch, len(rows))]
		params := map[string]any{"rows": batch}

		for _, stmt := range nodeStatements {
			if _, err := l.runner.Run(ctx, stmt.cypher, params); err != nil {
				return fmt.Errorf("merging %s batch: %w", stmt.name, err)
			}
		}

		for _, stmt := range relStatements {
			records, err := l.runner.Run(ctx, stmt.cypher, params)
			if err != nil {
				return fmt.Errorf("creating %s batch: %w", stmt.relType, err)
			}
			created := 0
			if len(records) > 0 {
				created = int(asInt64(records[0]["created"]))
			}
			skipped := len(batch) - created
			stats.RelsCreated[stmt.relType] += created
			stats.RelsSkipped[stmt.relType] += skipped
			if skipped > 0 {
				l.log.Warn("relationship rows skipped, endpoint missing",
					"rel_type", stmt.relType, "skipped", skipped)
			}
		}
	}

	l.log.Info("orders loaded",
		"rows", len(rows),
		"placed", stats.RelsCreated["PLACED"],
		"shipped_to", stats.RelsCreated["SHIPPED_TO"],
		"contains", stats.RelsCreated["CONTAINS"],
	)
	return nil
}

// orderRow converts a cleaned order into statement parameters. Absent
// values map to Cypher nulls.
func orderRow(o dataset.Order) map[string]any {
	row := map[string]any{
		"order_id":         o.OrderID,
		"customer_id":      o.CustomerID,
		"customer_name":    o.CustomerName,
		"customer_segment": o.CustomerSegment,
		"region":           o.Region,
		"product_id":       o.ProductID,
		"product_name":     o.ProductName,
		"category":         o.Category,
		"sub_category":     o.SubCategory,
		"ship_mode":        o.ShipMode,
		"returned":         o.Returned(),
		"order_date":       nil,
		"ship_date":        nil,
		"sales":            nil,
		"quantity":         nil,
		"discount":         nil,
		"profit":           nil,
	}
	if o.OrderDate != nil {
		row["order_date"] = *o.OrderDate
	}
	if o.ShipDate != nil {
		row["ship_date"] = *o.ShipDate
	}
	if o.Sales != nil {
		row["sales"] = *o.Sales
	}
	if o.Quantity != nil {
		row["quantity"] = int64(*o.Quantity)
	}
	if o.Discount != nil {
		row["discount"] = *o.Discount
	}
	if o.Profit != nil {
		row["profit"] = *o.Profit
	}
	return row
}
