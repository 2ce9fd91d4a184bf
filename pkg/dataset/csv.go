package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// RenameMap maps raw header names to the target schema. The projection
// below fixes the export column order.
var RenameMap = map[string]string{
	"Order ID":      "order_id",
	"Order Date":    "order_date",
	"Ship Date":     "ship_date",
	"Ship Mode":     "ship_mode",
	"Customer ID":   "customer_id",
	"Customer Name": "customer_name",
	"Segment":       "customer_segment",
	"Region":        "region",
	"Product ID":    "product_id",
	"Product Name":  "product_name",
	"Category":      "category",
	"Sub-Category":  "sub_category",
	"Sales":         "sales",
	"Quantity":      "quantity",
	"Discount":      "discount",
	"Profit":        "profit",
}

// ExportColumns is the projected schema of orders_clean.csv.
var ExportColumns = []string{
	"order_id", "order_date", "ship_date", "ship_mode",
	"customer_id", "customer_name", "customer_segment", "region",
	"product_id", "product_name", "category", "sub_category",
	"sales", "quantity", "discount", "profit", "returned_count",
}

const exportDateLayout = "2006-01-02"

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // raw exports have inconsistent field counts
	return cr
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, col string) string {
	if i, ok := idx[col]; ok && i < len(record) {
		return record[i]
	}
	return ""
}

// ReadOrders reads the raw orders export. Rows are returned untouched;
// coercion and dropping happen in Clean.
func ReadOrders(r io.Reader) ([]RawOrder, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading orders header: %w", err)
	}
	idx := headerIndex(header)

	var out []RawOrder
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading orders row: %w", err)
		}
		out = append(out, RawOrder{
			OrderID:      getField(record, idx, "Order ID"),
			OrderDate:    getField(record, idx, "Order Date"),
			ShipDate:     getField(record, idx, "Ship Date"),
			ShipMode:     getField(record, idx, "Ship Mode"),
			CustomerID:   getField(record, idx, "Customer ID"),
			CustomerName: getField(record, idx, "Customer Name"),
			Segment:      getField(record, idx, "Segment"),
			Region:       getField(record, idx, "Region"),
			ProductID:    getField(record, idx, "Product ID"),
			ProductName:  getField(record, idx, "Product Name"),
			Category:     getField(record, idx, "Category"),
			SubCategory:  getField(record, idx, "Sub-Category"),
			Sales:        getField(record, idx, "Sales"),
			Quantity:     getField(record, idx, "Quantity"),
			Discount:     getField(record, idx, "Discount"),
			Profit:       getField(record, idx, "Profit"),
		})
	}
	return out, nil
}

// ReadReturns reads the raw returns export.
func ReadReturns(r io.Reader) ([]Return, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading returns header: %w", err)
	}
	idx := headerIndex(header)

	var out []Return
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading returns row: %w", err)
		}
		out = append(out, Return{
			Returned: getField(record, idx, "Returned"),
			OrderID:  getField(record, idx, "Order ID"),
		})
	}
	return out, nil
}

// ReadPeople reads the raw people export (manager → region assignments).
func ReadPeople(r io.Reader) ([]Person, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading people header: %w", err)
	}
	idx := headerIndex(header)

	var out []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading people row: %w", err)
		}
		out = append(out, Person{
			Name:   strings.TrimSpace(getField(record, idx, "Person")),
			Region: strings.TrimSpace(getField(record, idx, "Region")),
		})
	}
	return out, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func exportRow(o Order) []string {
	return []string{
		o.OrderID,
		formatDate(o.OrderDate),
		formatDate(o.ShipDate),
		o.ShipMode,
		o.CustomerID,
		o.CustomerName,
		o.CustomerSegment,
		o.Region,
		o.ProductID,
		o.ProductName,
		o.Category,
		o.SubCategory,
		formatFloat(o.Sales),
		formatInt(o.Quantity),
		formatFloat(o.Discount),
		formatFloat(o.Profit),
		strconv.Itoa(o.ReturnedCount),
	}
}

// WriteOrders writes cleaned orders in the projected schema. Absent values
// are written as empty fields.
func WriteOrders(w io.Writer, orders []Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, o := range orders {
		if err := cw.Write(exportRow(o)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCleanOrders reads a previously exported orders_clean.csv.
func ReadCleanOrders(r io.Reader) ([]Order, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading clean orders header: %w", err)
	}
	idx := headerIndex(header)

	var out []Order
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading clean orders row: %w", err)
		}
		o := Order{
			OrderID:         getField(record, idx, "order_id"),
			OrderDate:       ParseDate(getField(record, idx, "order_date")),
			ShipDate:        ParseDate(getField(record, idx, "ship_date")),
			ShipMode:        getField(record, idx, "ship_mode"),
			CustomerID:      getField(record, idx, "customer_id"),
			CustomerName:    getField(record, idx, "customer_name"),
			CustomerSegment: getField(record, idx, "customer_segment"),
			Region:          getField(record, idx, "region"),
			ProductID:       getField(record, idx, "product_id"),
			ProductName:     getField(record, idx, "product_name"),
			Category:        getField(record, idx, "category"),
			SubCategory:     getField(record, idx, "sub_category"),
			Sales:           ParseFloat(getField(record, idx, "sales")),
			Quantity:        ParseInt(getField(record, idx, "quantity")),
			Discount:        ParseFloat(getField(record, idx, "discount")),
			Profit:          ParseFloat(getField(record, idx, "profit")),
		}
		if n := ParseInt(getField(record, idx, "returned_count")); n != nil {
			o.ReturnedCount = *n
		}
		out = append(out, o)
	}
	return out, nil
}

// ToRaw converts a cleaned order back into raw form. Re-cleaning the result
// must be a no-op; the cleaner is idempotent over its own output.
func ToRaw(o Order) RawOrder {
	return RawOrder{
		OrderID:      o.OrderID,
		OrderDate:    formatDate(o.OrderDate),
		ShipDate:     formatDate(o.ShipDate),
		ShipMode:     o.ShipMode,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Segment:      o.CustomerSegment,
		Region:       o.Region,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Category:     o.Category,
		SubCategory:  o.SubCategory,
		Sales:        formatFloat(o.Sales),
		Quantity:     formatInt(o.Quantity),
		Discount:     formatFloat(o.Discount),
		Profit:       formatFloat(o.Profit),
	}
}
