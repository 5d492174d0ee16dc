package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pocketbase/dbx"
)

// prefixSentinel bounds a starts-with range query. U+F8FF sorts above
// all normal text characters, so `field >= v && field <= v+sentinel`
// matches exactly the values that start with v on a store that only
// supports ordering comparisons.
const prefixSentinel = "\uf8ff"

// numericQuoteFields are the pricing fields filtered by exact numeric
// equality rather than prefix range.
var numericQuoteFields = map[string]bool{
	"total":           true,
	"labor":           true,
	"materials_total": true,
	"discount":        true,
	"fees":            true,
}

// filterableQuoteFields are the fields the filter form may name.
var filterableQuoteFields = map[string]bool{
	"name":            true,
	"email":           true,
	"phone":           true,
	"location":        true,
	"service":         true,
	"total":           true,
	"labor":           true,
	"materials_total": true,
	"discount":        true,
	"fees":            true,
}

// BuildQuoteFilter translates a field/value pair from the filter form
// into a store filter expression and its bound parameters.
//
// An empty expression means "no filter" (list everything). That is also
// the deliberate result when a numeric field gets an unparseable value:
// the original console fell back to the unfiltered list instead of
// erroring, and callers depend on that as the no-op default.
func BuildQuoteFilter(field, value string) (string, dbx.Params) {
	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)
	if field == "" || value == "" || !filterableQuoteFields[field] {
		return "", nil
	}

	if numericQuoteFields[field] {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", nil
		}
		return field + " = {:v}", dbx.Params{"v": num}
	}

	return field + " >= {:lo} && " + field + " <= {:hi}",
		dbx.Params{"lo": value, "hi": value + prefixSentinel}
}

// quoteFieldString returns a quote's filterable string field by name.
func quoteFieldString(q Quote, field string) string {
	switch field {
	case "name":
		return q.Name
	case "email":
		return q.Email
	case "phone":
		return q.Phone
	case "location":
		return q.Location
	case "service":
		return q.Service
	}
	return ""
}

// quoteFieldNumber returns a quote's numeric pricing field by name.
func quoteFieldNumber(q Quote, field string) float64 {
	switch field {
	case "total":
		return q.Total.Round().Float()
	case "labor":
		return q.Labor.Round().Float()
	case "materials_total":
		return q.MaterialsTotal.Round().Float()
	case "discount":
		return q.Discount.Round().Float()
	case "fees":
		return q.Fees.Round().Float()
	}
	return 0
}

// FilterQuotes applies the same filter semantics as BuildQuoteFilter to
// an in-memory snapshot, plus the free-text mode: with no field given
// but a value present, a quote matches when the lowercase-folded
// concatenation of name, location and service contains the folded
// query. The input slice is never mutated.
func FilterQuotes(quotes []Quote, field, value string) []Quote {
	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)
	if value == "" {
		return append([]Quote(nil), quotes...)
	}

	if field == "" {
		needle := strings.ToLower(value)
		var out []Quote
		for _, q := range quotes {
			haystack := strings.ToLower(q.Name + " " + q.Location + " " + q.Service)
			if strings.Contains(haystack, needle) {
				out = append(out, q)
			}
		}
		return out
	}

	if !filterableQuoteFields[field] {
		return append([]Quote(nil), quotes...)
	}

	if numericQuoteFields[field] {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			// Fallback to unfiltered, matching the store-side builder.
			return append([]Quote(nil), quotes...)
		}
		var out []Quote
		for _, q := range quotes {
			if quoteFieldNumber(q, field) == num {
				out = append(out, q)
			}
		}
		return out
	}

	hi := value + prefixSentinel
	var out []Quote
	for _, q := range quotes {
		v := quoteFieldString(q, field)
		if v >= value && v <= hi {
			out = append(out, q)
		}
	}
	return out
}

// Sort selector keys as submitted by the list page.
const (
	SortDateNewest = "date-newest"
	SortDateOldest = "date-oldest"
	SortPriceHigh  = "price-high"
	SortPriceLow   = "price-low"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
)

// SortQuotes returns a sorted copy of the snapshot. The sort is stable,
// so re-sorting by the same key is idempotent. An unknown key preserves
// the original order.
func SortQuotes(quotes []Quote, key string) []Quote {
	out := append([]Quote(nil), quotes...)

	var less func(a, b Quote) bool
	switch key {
	case SortDateNewest:
		less = func(a, b Quote) bool { return a.Created.After(b.Created) }
	case SortDateOldest:
		less = func(a, b Quote) bool { return a.Created.Before(b.Created) }
	case SortPriceHigh:
		less = func(a, b Quote) bool { return b.Total.Round().Float() < a.Total.Round().Float() }
	case SortPriceLow:
		less = func(a, b Quote) bool { return a.Total.Round().Float() < b.Total.Round().Float() }
	case SortNameAsc:
		less = func(a, b Quote) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortNameDesc:
		less = func(a, b Quote) bool { return strings.ToLower(b.Name) < strings.ToLower(a.Name) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
