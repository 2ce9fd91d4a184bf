package graph

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Graph Data Science invocations. The algorithms run inside the database;
// this side supplies the projection definition and the write-back property
// name, and reads the summary counters.

// Named in-database graph projections.
const (
	OrderProductGraph = "orderProductGraph"
	ProductCoGraph    = "productCoGraph"
)

// PageRank score and Louvain community id land on Product nodes under
// these property names.
const (
	PageRankProperty  = "pagerank"
	CommunityProperty = "communityId"
)

const (
	// Bipartite order→product projection, weighted by line sales.
	orderProductNodeQuery = `
MATCH (n) WHERE n:Order OR n:Product RETURN id(n) AS id`
	orderProductRelQuery = `
MATCH (o:Order)-[ct:CONTAINS]->(p:Product)
RETURN id(o) AS source, id(p) AS target, coalesce(ct.sales, 0.0) AS weight`

	// Product co-purchase projection: edge weight is the number of shared
	// orders; pairs are ordered to avoid double-counting.
	productCoNodeQuery = `
MATCH (p:Product) RETURN id(p) AS id`
	productCoRelQuery = `
MATCH (o:Order)-[:CONTAINS]->(p1:Product),
      (o)-[:CONTAINS]->(p2:Product)
WHERE id(p1) < id(p2)
RETURN id(p1) AS source, id(p2) AS target, count(*) AS weight`
)

// PageRankSummary reports the outcome of a pageRank.write call.
type PageRankSummary struct {
	NodePropertiesWritten int64
	RanIterations         int64
}

// LouvainSummary reports the outcome of a louvain.write call.
type LouvainSummary struct {
	CommunityCount int64
	Modularity     float64
}

// dropGraph removes a named projection if present; failIfMissing is false
// so a fresh database is not an error.
func dropGraph(ctx context.Context, r Runner, name string) error {
	_, err := r.Run(ctx, "CALL gds.graph.drop($name, false)", map[string]any{"name": name})
	if err != nil {
		return fmt.Errorf("dropping graph %s: %w", name, err)
	}
	return nil
}

func projectGraph(ctx context.Context, r Runner, name, nodeQuery, relQuery string) error {
	_, err := r.Run(ctx,
		"CALL gds.graph.project.cypher($name, $nodeQuery, $relQuery)",
		map[string]any{
			"name":      name,
			"nodeQuery": strings.TrimSpace(nodeQuery),
			"relQuery":  strings.TrimSpace(relQuery),
		})
	if err != nil {
		return fmt.Errorf("projecting graph %s: %w", name, err)
	}
	return nil
}

// RunPageRank projects the weighted order→product graph and writes an
// importance score onto each product node.
func RunPageRank(ctx context.Context, r Runner, log *slog.Logger) (PageRankSummary, error) {
	if err := dropGraph(ctx, r, OrderProductGraph); err != nil {
		return PageRankSummary{}, err
	}
	if err := projectGraph(ctx, r, OrderProductGraph, orderProductNodeQuery, orderProductRelQuery); err != nil {
		return PageRankSummary{}, err
	}

	records, err := r.Run(ctx, `
CALL gds.pageRank.write($graph, {
  relationshipWeightProperty: 'weight',
  writeProperty: $writeProperty
})
YIELD nodePropertiesWritten, ranIterations
RETURN nodePropertiesWritten, ranIterations`,
		map[string]any{
			"graph":         OrderProductGraph,
			"writeProperty": PageRankProperty,
		})
	if err != nil {
		return PageRankSummary{}, fmt.Errorf("running pageRank: %w", err)
	}

	var summary PageRankSummary
	if len(records) > 0 {
		summary.NodePropertiesWritten = asInt64(records[0]["nodePropertiesWritten"])
		summary.RanIterations = asInt64(records[0]["ranIterations"])
	}
	log.Info("pagerank complete",
		"properties_written", summary.NodePropertiesWritten,
		"iterations", summary.RanIterations,
	)
	return summary, nil
}

// RunLouvain projects the product co-purchase graph and writes a community
// id onto each product node.
func RunLouvain(ctx context.Context, r Runner, log *slog.Logger) (LouvainSummary, error) {
	if err := dropGraph(ctx, r, ProductCoGraph); err != nil {
		return LouvainSummary{}, err
	}
	if err := projectGraph(ctx, r, ProductCoGraph, productCoNodeQuery, productCoRelQuery); err != nil {
		return LouvainSummary{}, err
	}

	records, err := r.Run(ctx, `
CALL gds.louvain.write($graph, {
  relationshipWeightProperty: 'weight',
  writeProperty: $writeProperty
})
YIELD communityCount, modularity
RETURN communityCount, modularity`,
		map[string]any{
			"graph":         ProductCoGraph,
			"writeProperty": CommunityProperty,
		})
	if err != nil {
		return LouvainSummary{}, fmt.Errorf("running louvain: %w", err)
	}

	var summary LouvainSummary
	if len(records) > 0 {
		summary.CommunityCount = asInt64(records[0]["communityCount"])
		summary.Modularity = asFloat64(records[0]["modularity"])
	}
	log.Info("louvain complete",
		"communities", summary.CommunityCount,
		"modularity", summary.Modularity,
	)
	return summary, nil
}
