package dataset

import (
	"testing"
	"time"
)

// TestParseFloat_Coercion: "12.5" maps to 12.5, "abc" maps to absent.
func TestParseFloat_Coercion(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		absent bool
	}{
		{"12.5", 12.5, false},
		{" 12.5 ", 12.5, false},
		{"1,234.5", 1234.5, false},
		{"$9.99", 9.99, false},
		{"-0.25", -0.25, false},
		{"abc", 0, true},
		{"", 0, true},
		{"12.5.6", 0, true},
	}
	for _, c := range cases {
		got := ParseFloat(c.in)
		if c.absent {
			if got != nil {
				t.Errorf("ParseFloat(%q) = %v, want absent", c.in, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInt_Coercion(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		absent bool
	}{
		{"3", 3, false},
		{"3.0", 3, false},
		{"3.5", 0, true},
		{"three", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got := ParseInt(c.in)
		if c.absent {
			if got != nil {
				t.Errorf("ParseInt(%q) = %v, want absent", c.in, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Errorf("ParseInt(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2016, 11, 8, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"11/8/2016", "2016-11-08", "11-8-2016"} {
		got := ParseDate(in)
		if got == nil || !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"not-a-date", "13/45/20xx", ""} {
		if got := ParseDate(in); got != nil {
			t.Errorf("ParseDate(%q) = %v, want absent", in, *got)
		}
	}
}
