package ml

import "testing"

func TestFitGroupStats_MatchesRecomputation(t *testing.T) {
	rows := syntheticRows(t, 200)
	train, test := StratifiedSplit(rows, 0.2, 42)

	stats := FitGroupStats(train)

	// Recompute the aggregates from the training partition by hand and
	// check every row resolves to the recomputed values.
	custOrders := make(map[string]float64)
	custReturns := make(map[string]float64)
	prodOrders := make(map[string]float64)
	prodReturns := make(map[string]float64)
	for _, r := range train {
		custOrders[r.CustomerID]++
		prodOrders[r.ProductID]++
		if r.Label {
			custReturns[r.CustomerID]++
			prodReturns[r.ProductID]++
		}
	}

	for _, r := range append(train, test...) {
		custRate, custCount, prodRate := stats.Lookup(r)

		wantCount := custOrders[r.CustomerID]
		wantCustRate := 0.0
		if wantCount > 0 {
			wantCustRate = custReturns[r.CustomerID] / wantCount
		}
		wantProdRate := 0.0
		if n := prodOrders[r.ProductID]; n > 0 {
			wantProdRate = prodReturns[r.ProductID] / n
		}

		if custCount != wantCount {
			t.Fatalf("row %s: cust_order_cnt = %v, want %v", r.OrderID, custCount, wantCount)
		}
		if custRate != wantCustRate {
			t.Fatalf("row %s: cust_ret_rate = %v, want %v", r.OrderID, custRate, wantCustRate)
		}
		if prodRate != wantProdRate {
			t.Fatalf("row %s: prod_ret_rate = %v, want %v", r.OrderID, prodRate, wantProdRate)
		}
	}
}

func TestGroupStats_UnseenKeysAreNeutral(t *testing.T) {
	train := []Row{
		{OrderID: "A", CustomerID: "C1", ProductID: "P1", Label: true},
		{OrderID: "B", CustomerID: "C1", ProductID: "P1", Label: false},
	}
	stats := FitGroupStats(train)

	custRate, custCount, prodRate := stats.Lookup(Row{CustomerID: "C9", ProductID: "P9"})
	if custRate != 0 || custCount != 0 || prodRate != 0 {
		t.Errorf("unseen keys = (%v, %v, %v), want all zero", custRate, custCount, prodRate)
	}

	custRate, custCount, prodRate = stats.Lookup(Row{CustomerID: "C1", ProductID: "P1"})
	if custRate != 0.5 || custCount != 2 || prodRate != 0.5 {
		t.Errorf("seen keys = (%v, %v, %v), want (0.5, 2, 0.5)", custRate, custCount, prodRate)
	}
}
