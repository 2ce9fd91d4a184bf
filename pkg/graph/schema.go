package graph

import (
	"context"
	"fmt"
)

// schemaStatements declare the uniqueness constraint on each entity's
// identity field plus a secondary index on product category for
// category-filtered lookups. All are idempotent.
var schemaStatements = []string{
	"CREATE CONSTRAINT customer_id_unique IF NOT EXISTS FOR (c:Customer) REQUIRE c.id IS UNIQUE",
	"CREATE CONSTRAINT order_id_unique IF NOT EXISTS FOR (o:Order) REQUIRE o.id IS UNIQUE",
	"CREATE CONSTRAINT product_id_unique IF NOT EXISTS FOR (p:Product) REQUIRE p.id IS UNIQUE",
	"CREATE CONSTRAINT region_name_unique IF NOT EXISTS FOR (r:Region) REQUIRE r.name IS UNIQUE",
	"CREATE CONSTRAINT manager_name_unique IF NOT EXISTS FOR (m:Manager) REQUIRE m.name IS UNIQUE",
	"CREATE INDEX product_category_index IF NOT EXISTS FOR (p:Product) ON (p.category)",
}

// EnsureSchema creates the uniqueness constraints and indexes the load
// depends on. Must run before the first load.
func EnsureSchema(ctx context.Context, r Runner) error {
	for _, stmt := range schemaStatements {
		if _, err := r.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
