package ml

// GroupStats holds the aggregate features computed from the training
// partition only: per-customer historical return rate and order count, and
// per-product return rate. They are applied to any partition by lookup;
// keys unseen during fitting get a neutral zero.
type GroupStats struct {
	custReturnRate map[string]float64
	custOrderCount map[string]float64
	prodReturnRate map[string]float64
}

// FitGroupStats computes the aggregates over the given partition. Callers
// must pass the training partition; fitting over the full dataset before
// splitting is exactly the leak this pipeline exists to avoid.
func FitGroupStats(train []Row) *GroupStats {
	custReturns := make(map[string]float64)
	custOrders := make(map[string]float64)
	prodReturns := make(map[string]float64)
	prodOrders := make(map[string]float64)

	for _, r := range train {
		custOrders[r.CustomerID]++
		prodOrders[r.ProductID]++
		if r.Label {
			custReturns[r.CustomerID]++
			prodReturns[r.ProductID]++
		}
	}

	s := &GroupStats{
		custReturnRate: make(map[string]float64, len(custOrders)),
		custOrderCount: custOrders,
		prodReturnRate: make(map[string]float64, len(prodOrders)),
	}
	for id, n := range custOrders {
		s.custReturnRate[id] = custReturns[id] / n
	}
	for id, n := range prodOrders {
		s.prodReturnRate[id] = prodReturns[id] / n
	}
	return s
}

// Lookup returns the aggregate features for one row.
func (s *GroupStats) Lookup(r Row) (custRate, custCount, prodRate float64) {
	return s.custReturnRate[r.CustomerID], s.custOrderCount[r.CustomerID], s.prodReturnRate[r.ProductID]
}
