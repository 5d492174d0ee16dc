package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/services"
)

type materialDef struct {
	name  string
	qty   float64
	price float64
}

type quoteDef struct {
	name      string
	email     string
	phone     string
	location  string
	service   string
	materials []materialDef
	labor     float64
	fees      float64
	discount  float64
	days      int
	workers   int
}

var seedQuotes = []quoteDef{
	{
		name: "John Carter", email: "john.carter@example.com",
		phone: "512-555-0134", location: "Austin, TX", service: "Painting",
		materials: []materialDef{
			{"Interior paint (gal)", 6, 32.50},
			{"Painter's tape", 4, 5.25},
			{"Drop cloths", 3, 11.00},
		},
		labor: 480, fees: 35, discount: 10, days: 2, workers: 2,
	},
	{
		name: "Maria Delgado", email: "maria.d@example.com",
		phone: "214-555-0187", location: "Dallas, TX", service: "Drywall",
		materials: []materialDef{
			{"Drywall sheets", 12, 14.75},
			{"Joint compound", 2, 18.00},
			{"Screws (box)", 1, 9.99},
		},
		labor: 650, days: 3, workers: 2,
	},
	{
		name: "Rob Hensley", email: "rob.h@example.com",
		location: "Houston, TX", service: "Pressure Washing",
		labor:    225, days: 1, workers: 1,
	},
}

// Seed inserts demo quotes on first boot so the console has something
// to show. No-op when the collection already has records.
func Seed(app *pocketbase.PocketBase, mode services.PricingMode) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter(quotesCol, "", "", 1, 0, nil)
	if err != nil {
		return fmt.Errorf("seed: could not check for existing quotes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, def := range seedQuotes {
		ledger := services.NewLedger()
		for _, m := range def.materials {
			if err := ledger.AddOrReplace(m.name, m.qty, services.MustMoney(m.price)); err != nil {
				return fmt.Errorf("seed: bad material %q: %w", m.name, err)
			}
		}

		q := services.Quote{
			Name:      def.name,
			Email:     def.email,
			Phone:     def.phone,
			Location:  def.location,
			Service:   def.service,
			Materials: ledger,
			Labor:     services.MustMoney(def.labor),
			Fees:      services.MustMoney(def.fees),
			Discount:  services.MustMoney(def.discount),
			Days:      max(def.days, 1),
			Workers:   max(def.workers, 1),
		}
		q.Reprice(mode)

		rec := core.NewRecord(quotesCol)
		if err := q.ApplyTo(rec); err != nil {
			return fmt.Errorf("seed: could not map quote for %q: %w", def.name, err)
		}
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save quote for %q: %w", def.name, err)
		}
	}

	log.Printf("seed: inserted %d demo quotes\n", len(seedQuotes))
	return nil
}
