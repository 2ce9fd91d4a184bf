package reports

import (
	"context"
	"fmt"

	"github.com/storegraph/storegraph/pkg/graph"
)

// RegionSales is one row of the per-region aggregation.
type RegionSales struct {
	Region     string
	TotalSales float64
	AvgProfit  float64
	Orders     int64
}

// ShipModeReturns is one row of the per-ship-mode return ratio.
type ShipModeReturns struct {
	ShipMode   string
	Orders     int64
	Returned   int64
	ReturnRate float64
}

// CustomerSales is one row of the top-customer ranking.
type CustomerSales struct {
	CustomerID string
	Customer   string
	TotalSales float64
	Orders     int64
}

// SegmentOrders is one row of the per-segment volume aggregation.
type SegmentOrders struct {
	Segment     string
	Orders      int64
	AvgDiscount float64
}

// ProductRank is one row of the centrality ranking readout.
type ProductRank struct {
	ProductID string
	Product   string
	Category  string
	Score     float64
}

// ClusterSize is one row of the community-size readout.
type ClusterSize struct {
	Cluster int64
	Size    int64
}

// Report bundles every aggregation for one analytics run.
type Report struct {
	SalesByRegion    []RegionSales
	ReturnRates      []ShipModeReturns
	TopCustomers     []CustomerSales
	OrdersBySegment  []SegmentOrders
	TopProducts      []ProductRank
	TopClusters      []ClusterSize
}

// Run executes every aggregation query against the graph.
func Run(ctx context.Context, r graph.Runner) (*Report, error) {
	report := &Report{}

	rows, err := r.Run(ctx, QuerySalesByRegion, nil)
	if err != nil {
		return nil, fmt.Errorf("sales by region: %w", err)
	}
	for _, row := range rows {
		report.SalesByRegion = append(report.SalesByRegion, RegionSales{
			Region:     str(row["region"]),
			TotalSales: f64(row["total_sales"]),
			AvgProfit:  f64(row["avg_profit"]),
			Orders:     i64(row["orders"]),
		})
	}

	rows, err = r.Run(ctx, QueryReturnRateByShipMode, nil)
	if err != nil {
		return nil, fmt.Errorf("return rate by ship mode: %w", err)
	}
	for _, row := range rows {
		report.ReturnRates = append(report.ReturnRates, ShipModeReturns{
			ShipMode:   str(row["ship_mode"]),
			Orders:     i64(row["orders"]),
			Returned:   i64(row["returned"]),
			ReturnRate: f64(row["return_rate"]),
		})
	}

	rows, err = r.Run(ctx, QueryTopCustomersBySales, nil)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	for _, row := range rows {
		report.TopCustomers = append(report.TopCustomers, CustomerSales{
			CustomerID: str(row["customer_id"]),
			Customer:   str(row["customer"]),
			TotalSales: f64(row["total_sales"]),
			Orders:     i64(row["orders"]),
		})
	}

	rows, err = r.Run(ctx, QueryOrdersBySegment, nil)
	if err != nil {
		return nil, fmt.Errorf("orders by segment: %w", err)
	}
	for _, row := range rows {
		report.OrdersBySegment = append(report.OrdersBySegment, SegmentOrders{
			Segment:     str(row["segment"]),
			Orders:      i64(row["orders"]),
			AvgDiscount: f64(row["avg_discount"]),
		})
	}

	rows, err = r.Run(ctx, QueryTopProductsByRank, nil)
	if err != nil {
		return nil, fmt.Errorf("top products by rank: %w", err)
	}
	for _, row := range rows {
		report.TopProducts = append(report.TopProducts, ProductRank{
			ProductID: str(row["product_id"]),
			Product:   str(row["product"]),
			Category:  str(row["category"]),
			Score:     f64(row["score"]),
		})
	}

	rows, err = r.Run(ctx, QueryTopClustersBySize, nil)
	if err != nil {
		return nil, fmt.Errorf("top clusters: %w", err)
	}
	for _, row := range rows {
		report.TopClusters = append(report.TopClusters, ClusterSize{
			Cluster: i64(row["cluster"]),
			Size:    i64(row["size"]),
		})
	}

	return report, nil
}

// TopClusters reads only the community sizes, for charting.
func TopClusters(ctx context.Context, r graph.Runner) ([]ClusterSize, error) {
	rows, err := r.Run(ctx, QueryTopClustersBySize, nil)
	if err != nil {
		return nil, fmt.Errorf("top clusters: %w", err)
	}
	out := make([]ClusterSize, 0, len(rows))
	for _, row := range rows {
		out = append(out, ClusterSize{Cluster: i64(row["cluster"]), Size: i64(row["size"])})
	}
	return out, nil
}

// The driver hands back int64/float64/string under `any`; fakes in tests
// may use narrower types.

func i64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func f64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
