package dataset

import "strings"

// Clean normalizes raw order rows into the target schema:
//
//  1. permissive type coercion (bad dates and numerics become absent)
//  2. rows missing an order, customer, or product identifier are dropped
//  3. exact duplicate rows are dropped
//  4. return records are aggregated per order id and joined on; orders with
//     no matching returns get a count of zero
//
// Malformed input never fails the pass; the losses show up in CleanStats.
func Clean(raw []RawOrder, returns []Return) ([]Order, CleanStats) {
	stats := CleanStats{RowsIn: len(raw)}

	returnCounts := CountReturns(returns)

	seen := make(map[string]bool, len(raw))
	out := make([]Order, 0, len(raw))

	for _, r := range raw {
		if strings.TrimSpace(r.OrderID) == "" ||
			strings.TrimSpace(r.CustomerID) == "" ||
			strings.TrimSpace(r.ProductID) == "" {
			stats.DroppedMissingID++
			continue
		}

		o := Order{
			OrderID:         strings.TrimSpace(r.OrderID),
			OrderDate:       ParseDate(r.OrderDate),
			ShipDate:        ParseDate(r.ShipDate),
			ShipMode:        strings.TrimSpace(r.ShipMode),
			CustomerID:      strings.TrimSpace(r.CustomerID),
			CustomerName:    strings.TrimSpace(r.CustomerName),
			CustomerSegment: strings.TrimSpace(r.Segment),
			Region:          strings.TrimSpace(r.Region),
			ProductID:       strings.TrimSpace(r.ProductID),
			ProductName:     strings.TrimSpace(r.ProductName),
			Category:        strings.TrimSpace(r.Category),
			SubCategory:     strings.TrimSpace(r.SubCategory),
			Sales:           ParseFloat(r.Sales),
			Quantity:        ParseInt(r.Quantity),
			Discount:        ParseFloat(r.Discount),
			Profit:          ParseFloat(r.Profit),
		}

		if o.OrderDate == nil && strings.TrimSpace(r.OrderDate) != "" {
			stats.NulledDates++
		}
		if o.ShipDate == nil && strings.TrimSpace(r.ShipDate) != "" {
			stats.NulledDates++
		}
		for _, bad := range []bool{
			o.Sales == nil && strings.TrimSpace(r.Sales) != "",
			o.Quantity == nil && strings.TrimSpace(r.Quantity) != "",
			o.Discount == nil && strings.TrimSpace(r.Discount) != "",
			o.Profit == nil && strings.TrimSpace(r.Profit) != "",
		} {
			if bad {
				stats.NulledNumerics++
			}
		}

		key := dedupeKey(o)
		if seen[key] {
			stats.DroppedDuplicate++
			continue
		}
		seen[key] = true

		o.ReturnedCount = returnCounts[o.OrderID]
		out = append(out, o)
	}

	stats.RowsOut = len(out)
	return out, stats
}

// CountReturns aggregates return records into a per-order count.
func CountReturns(returns []Return) map[string]int {
	counts := make(map[string]int, len(returns))
	for _, r := range returns {
		id := strings.TrimSpace(r.OrderID)
		if id == "" {
			continue
		}
		counts[id]++
	}
	return counts
}

// dedupeKey identifies an order line by every projected field except the
// joined return count, which is derived after deduplication.
func dedupeKey(o Order) string {
	row := exportRow(o)
	return strings.Join(row[:len(row)-1], "\x1f")
}
