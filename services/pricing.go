package services

// DiscountMode selects how the discount field on a quote is
// interpreted. Historical data mixes both readings, so the mode is
// fixed per deployment and applied uniformly, never guessed per record.
type DiscountMode string

const (
	// DiscountPercent treats the discount as a percentage of the
	// subtotal (0-100).
	DiscountPercent DiscountMode = "percent"
	// DiscountFlat treats the discount as a flat money amount, clamped
	// to the subtotal.
	DiscountFlat DiscountMode = "flat"
)

// PricingMode is the deployment-level pricing configuration.
type PricingMode struct {
	Discount DiscountMode
	// IncludeFeesInDiscountBase widens the percent-mode discount base
	// to subtotal + fees. Fees are never discounted in flat mode.
	IncludeFeesInDiscountBase bool
}

// QuotePricing holds the derived money fields of a quote, rounded to
// two decimal places.
type QuotePricing struct {
	MaterialsTotal Money
	DiscountAmount Money
	Total          Money
}

// ComputePricing derives the quote totals from its inputs. It is a
// pure function: identical inputs always produce identical outputs.
// Rounding happens once, on the returned values.
//
//	subtotal = materialsTotal + labor
//	percent: discount = base × d/100   (base includes fees per mode)
//	flat:    discount = min(d, subtotal)
//	total    = subtotal + fees − discount
func ComputePricing(ledger *Ledger, labor, fees, discount Money, mode PricingMode) QuotePricing {
	materialsTotal := Zero
	if ledger != nil {
		materialsTotal = ledger.Total()
	}
	subtotal := materialsTotal.Add(labor)

	var discountAmount Money
	switch mode.Discount {
	case DiscountFlat:
		discountAmount = discount.Min(subtotal)
	default:
		base := subtotal
		if mode.IncludeFeesInDiscountBase {
			base = base.Add(fees)
		}
		discountAmount = base.Percent(discount.Float())
	}

	total := subtotal.Add(fees).Sub(discountAmount).ClampZero()

	return QuotePricing{
		MaterialsTotal: materialsTotal.Round(),
		DiscountAmount: discountAmount.Round(),
		Total:          total.Round(),
	}
}

// ReconstructLabor back-solves labor from a persisted total for legacy
// records that never stored labor directly. The result is clamped at
// zero. This is a lossy import-time heuristic: once a record carries an
// explicit labor value it must never be re-derived this way.
func ReconstructLabor(total, materialsTotal Money) Money {
	return total.Sub(materialsTotal).ClampZero()
}
