package ml

import "testing"

func encoderFixture(t *testing.T) (*Encoder, []Row) {
	t.Helper()
	train := []Row{
		{OrderID: "A", CustomerID: "C1", ProductID: "P1", ShipMode: "First Class", Segment: "Consumer", Region: "West", Category: "Furniture", SubCategory: "Chairs", Sales: 100, Quantity: 2, Label: true},
		{OrderID: "B", CustomerID: "C1", ProductID: "P2", ShipMode: "Standard Class", Segment: "Corporate", Region: "East", Category: "Technology", SubCategory: "Phones", Sales: 50, Quantity: 1, Label: false},
	}
	return NewEncoder(train, FitGroupStats(train)), train
}

func TestEncoder_NumericColumnsComeFirst(t *testing.T) {
	enc, _ := encoderFixture(t)

	names := enc.FeatureNames()
	for i, want := range numericNames {
		if names[i] != want {
			t.Fatalf("column %d = %q, want %q", i, names[i], want)
		}
	}
	if enc.Width() != len(names) {
		t.Errorf("Width() = %d, names = %d", enc.Width(), len(names))
	}
}

func TestEncoder_OneHotEncodesKnownCategories(t *testing.T) {
	enc, train := encoderFixture(t)

	x := enc.EncodeRow(train[0])
	names := enc.FeatureNames()

	hot := make(map[string]bool)
	for i := len(numericNames); i < len(x); i++ {
		if x[i] == 1 {
			hot[names[i]] = true
		}
	}
	for _, want := range []string{
		"ship_mode=First Class",
		"customer_segment=Consumer",
		"region=West",
		"category=Furniture",
		"sub_category=Chairs",
	} {
		if !hot[want] {
			t.Errorf("expected %q set, hot columns: %v", want, hot)
		}
	}
	if len(hot) != len(categoricalNames) {
		t.Errorf("got %d hot columns, want %d", len(hot), len(categoricalNames))
	}
}

func TestEncoder_UnknownCategoryEncodesToZeroBlock(t *testing.T) {
	enc, _ := encoderFixture(t)

	x := enc.EncodeRow(Row{ShipMode: "Same Day", Segment: "Home Office", Region: "South", Category: "Office Supplies", SubCategory: "Binders"})
	for i := len(numericNames); i < len(x); i++ {
		if x[i] != 0 {
			t.Fatalf("column %q = %v, want 0 for unseen categories", enc.FeatureNames()[i], x[i])
		}
	}
}

func TestEncoder_JoinsGroupStatistics(t *testing.T) {
	enc, train := encoderFixture(t)

	// C1 has 2 train orders, 1 returned; P1 has 1 order, 1 returned.
	x := enc.EncodeRow(train[0])
	if x[6] != 0.5 {
		t.Errorf("cust_ret_rate = %v, want 0.5", x[6])
	}
	if x[7] != 2 {
		t.Errorf("cust_order_cnt = %v, want 2", x[7])
	}
	if x[8] != 1 {
		t.Errorf("prod_ret_rate = %v, want 1", x[8])
	}

	// Unseen customer and product resolve to zeros.
	x = enc.EncodeRow(Row{CustomerID: "C9", ProductID: "P9"})
	if x[6] != 0 || x[7] != 0 || x[8] != 0 {
		t.Errorf("unseen group features = (%v, %v, %v), want zeros", x[6], x[7], x[8])
	}
}
