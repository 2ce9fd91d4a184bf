// Package ml trains and evaluates the order-return classifier. The split
// happens before any group-level aggregate is computed, so evaluation rows
// never leak into the statistics that describe them.
package ml

import "github.com/storegraph/storegraph/pkg/dataset"

// Row is one order line prepared for modeling. Absent numeric inputs fold
// to zero; the label is always derivable because returned_count defaults
// to zero during cleaning.
type Row struct {
	OrderID    string
	CustomerID string
	ProductID  string

	ShipMode    string
	Segment     string
	Region      string
	Category    string
	SubCategory string

	Sales         float64
	Quantity      float64
	Discount      float64
	Profit        float64
	ShipDelayDays float64
	UnitPrice     float64

	Label bool
}

// BuildRows derives the base features from cleaned orders: the return
// label, shipping delay in days, and per-unit price.
func BuildRows(orders []dataset.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		r := Row{
			OrderID:     o.OrderID,
			CustomerID:  o.CustomerID,
			ProductID:   o.ProductID,
			ShipMode:    o.ShipMode,
			Segment:     o.CustomerSegment,
			Region:      o.Region,
			Category:    o.Category,
			SubCategory: o.SubCategory,
			Label:       o.Returned(),
		}
		if o.Sales != nil {
			r.Sales = *o.Sales
		}
		if o.Quantity != nil {
			r.Quantity = float64(*o.Quantity)
		}
		if o.Discount != nil {
			r.Discount = *o.Discount
		}
		if o.Profit != nil {
			r.Profit = *o.Profit
		}
		if o.OrderDate != nil && o.ShipDate != nil {
			r.ShipDelayDays = o.ShipDate.Sub(*o.OrderDate).Hours() / 24
		}
		if o.Sales != nil && o.Quantity != nil && *o.Quantity != 0 {
			r.UnitPrice = *o.Sales / float64(*o.Quantity)
		}
		rows = append(rows, r)
	}
	return rows
}
