package dataset

import "time"

// Raw CSV schemas (Superstore export convention)
// Orders: Row ID, Order ID, Order Date, Ship Date, Ship Mode, Customer ID,
//         Customer Name, Segment, Country, City, State, Postal Code, Region,
//         Product ID, Category, Sub-Category, Product Name, Sales, Quantity,
//         Discount, Profit
// People: Person, Region
// Returns: Returned, Order ID

// RawOrder is one row of the raw orders export, all fields as-is.
type RawOrder struct {
	OrderID      string
	OrderDate    string
	ShipDate     string
	ShipMode     string
	CustomerID   string
	CustomerName string
	Segment      string
	Region       string
	ProductID    string
	ProductName  string
	Category     string
	SubCategory  string
	Sales        string
	Quantity     string
	Discount     string
	Profit       string
}

// Return is one row of the returns export.
type Return struct {
	Returned string
	OrderID  string
}

// Person is one row of the people export: a regional manager assignment.
type Person struct {
	Name   string
	Region string
}

// Order is a cleaned order line. Pointer fields are absent when the raw
// value failed coercion; string fields are empty when the raw value was
// missing.
type Order struct {
	OrderID         string
	OrderDate       *time.Time
	ShipDate        *time.Time
	ShipMode        string
	CustomerID      string
	CustomerName    string
	CustomerSegment string
	Region          string
	ProductID       string
	ProductName     string
	Category        string
	SubCategory     string
	Sales           *float64
	Quantity        *int
	Discount        *float64
	Profit          *float64
	ReturnedCount   int
}

// Returned reports whether the order line had at least one matching return
// record. Zero aggregated returns mean false, never unknown.
func (o Order) Returned() bool {
	return o.ReturnedCount > 0
}

// CleanStats summarizes one cleaning pass. The lossy behaviors (dropped and
// nulled values) are reported as counts, not errors.
type CleanStats struct {
	RowsIn           int
	RowsOut          int
	DroppedMissingID int
	DroppedDuplicate int
	NulledDates      int
	NulledNumerics   int
}
