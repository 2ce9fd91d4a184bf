package ml

import "sort"

// numericNames are the numeric feature columns, in matrix order. The last
// three are the train-only group aggregates.
var numericNames = []string{
	"sales", "quantity", "discount", "profit",
	"ship_delay_days", "unit_price",
	"cust_ret_rate", "cust_order_cnt", "prod_ret_rate",
}

// categoricalNames are the one-hot encoded columns.
var categoricalNames = []string{
	"ship_mode", "customer_segment", "region", "category", "sub_category",
}

func categoricalValue(r Row, col string) string {
	switch col {
	case "ship_mode":
		return r.ShipMode
	case "customer_segment":
		return r.Segment
	case "region":
		return r.Region
	case "category":
		return r.Category
	case "sub_category":
		return r.SubCategory
	}
	return ""
}

// Encoder maps rows to dense feature vectors: numeric columns first, then
// one one-hot block per categorical column. Categories are fitted on the
// training partition; unknown categories encode to an all-zero block.
type Encoder struct {
	stats  *GroupStats
	index  map[string]map[string]int // col -> category -> one-hot offset
	names  []string
	offset map[string]int // col -> start of its one-hot block
	width  int
}

// NewEncoder fits category vocabularies on the training partition and
// captures the group statistics to join in.
func NewEncoder(train []Row, stats *GroupStats) *Encoder {
	e := &Encoder{
		stats:  stats,
		index:  make(map[string]map[string]int),
		offset: make(map[string]int),
	}

	e.names = append(e.names, numericNames...)
	e.width = len(numericNames)

	for _, col := range categoricalNames {
		seen := make(map[string]bool)
		for _, r := range train {
			seen[categoricalValue(r, col)] = true
		}
		cats := make([]string, 0, len(seen))
		for c := range seen {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		e.offset[col] = e.width
		e.index[col] = make(map[string]int, len(cats))
		for i, c := range cats {
			e.index[col][c] = e.width + i
			e.names = append(e.names, col+"="+c)
		}
		e.width += len(cats)
	}
	return e
}

// FeatureNames returns the column names in matrix order.
func (e *Encoder) FeatureNames() []string {
	return e.names
}

// Width returns the feature vector length.
func (e *Encoder) Width() int {
	return e.width
}

// EncodeRow produces the feature vector for one row.
func (e *Encoder) EncodeRow(r Row) []float64 {
	x := make([]float64, e.width)
	custRate, custCount, prodRate := e.stats.Lookup(r)
	x[0] = r.Sales
	x[1] = r.Quantity
	x[2] = r.Discount
	x[3] = r.Profit
	x[4] = r.ShipDelayDays
	x[5] = r.UnitPrice
	x[6] = custRate
	x[7] = custCount
	x[8] = prodRate

	for _, col := range categoricalNames {
		if i, ok := e.index[col][categoricalValue(r, col)]; ok {
			x[i] = 1
		}
		// unknown category: block stays all-zero
	}
	return x
}

// Encode produces the feature matrix and label vector for a partition.
func (e *Encoder) Encode(rows []Row) ([][]float64, []bool) {
	X := make([][]float64, len(rows))
	y := make([]bool, len(rows))
	for i, r := range rows {
		X[i] = e.EncodeRow(r)
		y[i] = r.Label
	}
	return X, y
}
