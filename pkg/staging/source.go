package staging

import (
	"time"

	"github.com/storegraph/storegraph/pkg/dataset"
)

var orderColumns = []string{
	"run_id", "order_id", "order_date", "ship_date", "ship_mode",
	"customer_id", "customer_name", "customer_segment", "region",
	"product_id", "product_name", "category", "sub_category",
	"sales", "quantity", "discount", "profit", "returned_count",
	"loaded_at",
}

// orderSource adapts a cleaned-order slice to pgx's CopyFrom protocol.
// Absent pointer values become SQL nulls.
type orderSource struct {
	runID    string
	orders   []dataset.Order
	loadedAt time.Time
	pos      int
}

func (s *orderSource) Next() bool {
	s.pos++
	return s.pos <= len(s.orders)
}

func (s *orderSource) Values() ([]any, error) {
	o := s.orders[s.pos-1]
	row := []any{
		s.runID, o.OrderID, nil, nil, o.ShipMode,
		o.CustomerID, o.CustomerName, o.CustomerSegment, o.Region,
		o.ProductID, o.ProductName, o.Category, o.SubCategory,
		nil, nil, nil, nil, o.ReturnedCount,
		s.loadedAt,
	}
	if o.OrderDate != nil {
		row[2] = *o.OrderDate
	}
	if o.ShipDate != nil {
		row[3] = *o.ShipDate
	}
	if o.Sales != nil {
		row[13] = *o.Sales
	}
	if o.Quantity != nil {
		row[14] = *o.Quantity
	}
	if o.Discount != nil {
		row[15] = *o.Discount
	}
	if o.Profit != nil {
		row[16] = *o.Profit
	}
	return row, nil
}

func (s *orderSource) Err() error {
	return nil
}
