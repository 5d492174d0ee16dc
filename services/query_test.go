package services

import (
	"testing"
	"time"
)

func sampleQuotes() []Quote {
	day := 24 * time.Hour
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Quote{
		{ID: "q1", Name: "John Carter", Location: "Austin", Service: "Painting",
			Total: MustMoney(145), Labor: MustMoney(50), Created: base},
		{ID: "q2", Name: "Joan Walsh", Location: "Dallas", Service: "Drywall",
			Total: MustMoney(300), Labor: MustMoney(120), Created: base.Add(day)},
		{ID: "q3", Name: "alice brown", Location: "Houston", Service: "Painting",
			Total: MustMoney(145), Labor: MustMoney(80), Created: base.Add(2 * day)},
		{ID: "q4", Name: "Bob Jones", Location: "Joplin", Service: "Flooring",
			Total: MustMoney(99.5), Labor: MustMoney(20), Created: base.Add(3 * day)},
	}
}

func ids(quotes []Quote) []string {
	out := make([]string, len(quotes))
	for i, q := range quotes {
		out[i] = q.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Quote, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestBuildQuoteFilter(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		value      string
		wantExpr   string
		wantParams map[string]any
	}{
		{"no field no value", "", "", "", nil},
		{"value without field is free text, not a store filter", "", "john", "", nil},
		{
			"numeric equality", "total", "145",
			"total = {:v}", map[string]any{"v": 145.0},
		},
		{
			// The unfiltered fallback is load-bearing: several callers
			// use a junk value as the no-op default.
			"numeric parse failure falls back to all", "total", "abc",
			"", nil,
		},
		{
			"string prefix range", "name", "Jo",
			"name >= {:lo} && name <= {:hi}",
			map[string]any{"lo": "Jo", "hi": "Jo\uf8ff"},
		},
		{"unknown field ignored", "password", "x", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, params := BuildQuoteFilter(tt.field, tt.value)
			if expr != tt.wantExpr {
				t.Errorf("expr = %q, want %q", expr, tt.wantExpr)
			}
			if len(params) != len(tt.wantParams) {
				t.Fatalf("params = %v, want %v", params, tt.wantParams)
			}
			for k, v := range tt.wantParams {
				if params[k] != v {
					t.Errorf("params[%q] = %v, want %v", k, params[k], v)
				}
			}
		})
	}
}

func TestFilterQuotes_NumericFallback(t *testing.T) {
	quotes := sampleQuotes()
	got := FilterQuotes(quotes, "total", "abc")
	assertIDs(t, got, "q1", "q2", "q3", "q4")
}

func TestFilterQuotes_NumericEquality(t *testing.T) {
	got := FilterQuotes(sampleQuotes(), "total", "145")
	assertIDs(t, got, "q1", "q3")
}

func TestFilterQuotes_NamePrefix(t *testing.T) {
	// Case-sensitive starts-with, per the store's native ordering:
	// "Jo" matches "John Carter" and "Joan Walsh" but not "Joplin"
	// (that is a location) nor "Bob Jones" (not a prefix).
	got := FilterQuotes(sampleQuotes(), "name", "Jo")
	assertIDs(t, got, "q1", "q2")
}

func TestFilterQuotes_FreeText(t *testing.T) {
	// No field: folded substring over name + location + service.
	got := FilterQuotes(sampleQuotes(), "", "painting")
	assertIDs(t, got, "q1", "q3")

	got = FilterQuotes(sampleQuotes(), "", "joplin")
	assertIDs(t, got, "q4")
}

func TestFilterQuotes_DoesNotMutateInput(t *testing.T) {
	quotes := sampleQuotes()
	before := ids(quotes)

	FilterQuotes(quotes, "name", "Jo")
	SortQuotes(quotes, SortPriceHigh)

	after := ids(quotes)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input mutated: %v -> %v", before, after)
		}
	}
}

func TestSortQuotes(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{SortDateNewest, []string{"q4", "q3", "q2", "q1"}},
		{SortDateOldest, []string{"q1", "q2", "q3", "q4"}},
		{SortPriceHigh, []string{"q2", "q1", "q3", "q4"}},
		{SortPriceLow, []string{"q4", "q1", "q3", "q2"}},
		{SortNameAsc, []string{"q3", "q4", "q2", "q1"}},
		{SortNameDesc, []string{"q1", "q2", "q4", "q3"}},
		{"unknown-key", []string{"q1", "q2", "q3", "q4"}},
		{"", []string{"q1", "q2", "q3", "q4"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := SortQuotes(sampleQuotes(), tt.key)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestSortQuotes_Idempotent(t *testing.T) {
	once := SortQuotes(sampleQuotes(), SortPriceHigh)
	twice := SortQuotes(once, SortPriceHigh)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("re-sort changed order: %v vs %v", ids(once), ids(twice))
		}
	}
}

func TestSortQuotes_StableForEqualTotals(t *testing.T) {
	// q1 and q3 share a total; their relative order must not change.
	got := SortQuotes(sampleQuotes(), SortPriceHigh)
	assertIDs(t, got, "q2", "q1", "q3", "q4")
}
