package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"quoteadmin/services"
)

// MigrateLegacyTotals back-fills the labor field on records imported
// from the old estimator, which persisted a grand total but no labor
// breakdown. For each such record labor is reconstructed as
// total − materialsTotal and the derived fields are recomputed under
// the deployment pricing mode so total stays consistent with its
// inputs.
//
// The back-derivation is a lossy heuristic and must run at most once
// per record. A record only qualifies while its stored total cannot be
// reproduced from its stored inputs; after the back-fill the totals
// agree, so neither a restart nor a normal edit can re-trigger it.
// Safe to call on every startup.
func MigrateLegacyTotals(app *pocketbase.PocketBase, mode services.PricingMode) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	candidates, err := app.FindRecordsByFilter(
		quotesCol,
		"labor = 0 && total > 0",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query legacy quotes: %w", err)
	}

	migrated := 0
	for _, rec := range candidates {
		q := services.QuoteFromRecord(rec)

		// A genuine zero-labor quote reproduces its stored total from
		// its inputs; only records that do not are legacy imports.
		expected := services.ComputePricing(q.Materials, q.Labor, q.Fees, q.Discount, mode)
		if expected.Total.Equal(q.Total.Round()) {
			continue
		}

		materialsTotal := services.Zero
		if q.Materials != nil {
			materialsTotal = q.Materials.Total()
		}
		q.Labor = services.ReconstructLabor(q.Total, materialsTotal)
		q.Reprice(mode)

		if err := q.ApplyTo(rec); err != nil {
			log.Printf("migrate: failed to map quote %s: %v\n", rec.Id, err)
			continue
		}
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to save quote %s: %v\n", rec.Id, err)
			continue
		}

		migrated++
		log.Printf("migrate: quote %s labor <- %s\n", rec.Id, q.Labor.Format())
	}

	if migrated > 0 {
		log.Printf("migrate: back-derived labor on %d legacy quote(s).\n", migrated)
	}
	return nil
}
