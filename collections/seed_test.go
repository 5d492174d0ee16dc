package collections_test

import (
	"testing"

	"quoteadmin/collections"
	"quoteadmin/services"
	"quoteadmin/testhelpers"
)

var seedMode = services.PricingMode{Discount: services.DiscountPercent}

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	quotes, err := app.FindAllRecords(quotesCol)
	if err != nil {
		t.Fatalf("query quotes error: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 seeded quotes, got %d", len(quotes))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	quotes, _ := app.FindAllRecords(quotesCol)
	if len(quotes) != 3 {
		t.Errorf("expected 3 quotes after idempotent seed, got %d", len(quotes))
	}
}

func TestSeed_DerivedFieldsConsistent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	quotes, _ := app.FindAllRecords(quotesCol)
	for _, rec := range quotes {
		q := services.QuoteFromRecord(rec)
		expected := services.ComputePricing(q.Materials, q.Labor, q.Fees, q.Discount, seedMode)
		if !expected.Total.Equal(q.Total) {
			t.Errorf("quote %q: stored total %s does not match computed %s",
				q.Name, q.Total.Format(), expected.Total.Format())
		}
		if !expected.MaterialsTotal.Equal(q.MaterialsTotal) {
			t.Errorf("quote %q: stored materials_total %s does not match computed %s",
				q.Name, q.MaterialsTotal.Format(), expected.MaterialsTotal.Format())
		}
	}
}

func TestSeed_MaterialsStored(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	records, _ := app.FindRecordsByFilter(
		quotesCol,
		"name = {:n}",
		"", 1, 0,
		map[string]any{"n": "John Carter"},
	)
	if len(records) == 0 {
		t.Fatal("seeded quote for John Carter not found")
	}

	q := services.QuoteFromRecord(records[0])
	if q.Materials.Len() != 3 {
		t.Errorf("expected 3 material lines, got %d", q.Materials.Len())
	}
	if q.Materials.Lines()[0].Name != "Interior paint (gal)" {
		t.Errorf("first material = %q, want %q", q.Materials.Lines()[0].Name, "Interior paint (gal)")
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a quote first (not via Seed)
	testhelpers.CreateTestQuote(t, app, "Pre-existing Quote")

	// Seed should skip because quote data already exists
	if err := collections.Seed(app, seedMode); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	quotes, _ := app.FindAllRecords(quotesCol)
	if len(quotes) != 1 {
		t.Errorf("expected 1 quote (pre-existing only), got %d", len(quotes))
	}
	if quotes[0].GetString("name") != "Pre-existing Quote" {
		t.Errorf("expected pre-existing quote, got %q", quotes[0].GetString("name"))
	}
}
