package services

import (
	"encoding/json"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Quote is the in-memory view of a persisted quote record. Derived
// fields (MaterialsTotal, DiscountAmount, Total) are recomputed on
// every save and never edited independently of their inputs.
type Quote struct {
	ID string

	Name     string
	Email    string
	Phone    string
	Location string
	Service  string

	Materials *Ledger

	Labor    Money
	Fees     Money
	Discount Money
	Days     int
	Workers  int

	MaterialsTotal Money
	DiscountAmount Money
	Total          Money

	Created time.Time
	Updated time.Time
}

// QuoteFromRecord maps a stored record into a Quote. A malformed
// materials blob degrades to an empty ledger; stored number fields are
// trusted (they were validated on save).
func QuoteFromRecord(rec *core.Record) Quote {
	ledger := NewLedger()
	if raw := rec.GetString("materials"); raw != "" && raw != "null" {
		// Ignore decode errors: a corrupt blob must not make the
		// record unviewable.
		_ = json.Unmarshal([]byte(raw), ledger)
	}

	days := int(rec.GetFloat("days"))
	if days < 1 {
		days = 1
	}
	workers := int(rec.GetFloat("workers"))
	if workers < 1 {
		workers = 1
	}

	return Quote{
		ID:             rec.Id,
		Name:           rec.GetString("name"),
		Email:          rec.GetString("email"),
		Phone:          rec.GetString("phone"),
		Location:       rec.GetString("location"),
		Service:        rec.GetString("service"),
		Materials:      ledger,
		Labor:          MustMoney(rec.GetFloat("labor")),
		Fees:           MustMoney(rec.GetFloat("fees")),
		Discount:       MustMoney(rec.GetFloat("discount")),
		Days:           days,
		Workers:        workers,
		MaterialsTotal: MustMoney(rec.GetFloat("materials_total")),
		DiscountAmount: MustMoney(rec.GetFloat("discount_amount")),
		Total:          MustMoney(rec.GetFloat("total")),
		Created:        rec.GetDateTime("created").Time(),
		Updated:        rec.GetDateTime("updated").Time(),
	}
}

// ApplyTo writes the quote's input fields and freshly computed derived
// fields onto a record. The caller runs ComputePricing first and sets
// the results on q; ApplyTo performs a full-record replace.
func (q Quote) ApplyTo(rec *core.Record) error {
	materials := []byte("{}")
	if q.Materials != nil {
		var err error
		materials, err = json.Marshal(q.Materials)
		if err != nil {
			return err
		}
	}

	rec.Set("name", q.Name)
	rec.Set("email", q.Email)
	rec.Set("phone", q.Phone)
	rec.Set("location", q.Location)
	rec.Set("service", q.Service)
	rec.Set("materials", string(materials))
	rec.Set("labor", q.Labor.Float())
	rec.Set("fees", q.Fees.Float())
	rec.Set("discount", q.Discount.Float())
	rec.Set("days", q.Days)
	rec.Set("workers", q.Workers)
	rec.Set("materials_total", q.MaterialsTotal.Float())
	rec.Set("discount_amount", q.DiscountAmount.Float())
	rec.Set("total", q.Total.Float())
	return nil
}

// Reprice recomputes the derived fields from the quote's inputs under
// the given deployment mode.
func (q *Quote) Reprice(mode PricingMode) {
	p := ComputePricing(q.Materials, q.Labor, q.Fees, q.Discount, mode)
	q.MaterialsTotal = p.MaterialsTotal
	q.DiscountAmount = p.DiscountAmount
	q.Total = p.Total
}
