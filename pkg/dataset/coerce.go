package dataset

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order. The raw exports mix US-style slash dates
// with ISO dates depending on which tool produced them.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"1-2-2006",
	"2006/01/02",
}

// ParseDate coerces a raw date string. Unparseable values become absent
// (nil), never an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseFloat coerces a raw numeric string. Unparseable values become absent.
func ParseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Tolerate thousands separators and a leading currency sign.
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseInt coerces a raw integer string. Values like "3.0" are accepted as
// long as they are whole; anything else becomes absent.
func ParseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return nil
	}
	n := int(f)
	return &n
}
