package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"quoteadmin/services"
	"quoteadmin/templates"
)

// parseQuoteForm reads the quote form's edit buffer into a Quote. The
// returned map carries per-field validation messages; an empty map
// means the quote is safe to price and save. Derived fields are not
// set here, the caller runs Reprice.
func parseQuoteForm(r *http.Request) (services.Quote, map[string]string) {
	fieldErrors := map[string]string{}

	q := services.Quote{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Location: strings.TrimSpace(r.FormValue("location")),
		Service:  strings.TrimSpace(r.FormValue("service")),
	}

	if q.Name == "" {
		fieldErrors["name"] = "Client name is required."
	}
	if q.Email == "" {
		fieldErrors["email"] = "Email is required."
	}
	if q.Location == "" {
		fieldErrors["location"] = "Location is required."
	}

	q.Labor = parseMoneyField(r.FormValue("labor"), "labor", "Labor", fieldErrors)
	q.Fees = parseMoneyField(r.FormValue("fees"), "fees", "Fees", fieldErrors)
	q.Discount = parseMoneyField(r.FormValue("discount"), "discount", "Discount", fieldErrors)

	q.Days = parseCountField(r.FormValue("days"))
	q.Workers = parseCountField(r.FormValue("workers"))

	q.Materials = parseMaterialRows(r, fieldErrors)

	return q, fieldErrors
}

func parseMoneyField(raw, field, label string, fieldErrors map[string]string) services.Money {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return services.Zero
	}
	m, err := services.ParseMoney(raw)
	if err != nil {
		fieldErrors[field] = label + " must be a valid amount."
		return services.Zero
	}
	if m.IsNegative() {
		fieldErrors[field] = label + " cannot be negative."
		return services.Zero
	}
	return m
}

func parseCountField(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseMaterialRows reads the parallel material_name/material_qty/
// material_price arrays. Fully blank rows (the trailing "add" row) are
// skipped; a partially filled or invalid row fails validation rather
// than being silently dropped.
func parseMaterialRows(r *http.Request, fieldErrors map[string]string) *services.Ledger {
	names := r.Form["material_name"]
	qtys := r.Form["material_qty"]
	prices := r.Form["material_price"]

	ledger := services.NewLedger()
	for i, name := range names {
		name = strings.TrimSpace(name)
		var qtyRaw, priceRaw string
		if i < len(qtys) {
			qtyRaw = strings.TrimSpace(qtys[i])
		}
		if i < len(prices) {
			priceRaw = strings.TrimSpace(prices[i])
		}

		if name == "" && qtyRaw == "" && priceRaw == "" {
			continue
		}

		qty, err := strconv.ParseFloat(qtyRaw, 64)
		if err != nil {
			fieldErrors["materials"] = "Each material needs a numeric quantity."
			continue
		}
		price, err := services.ParseMoney(priceRaw)
		if err != nil {
			fieldErrors["materials"] = "Each material needs a valid unit price."
			continue
		}
		if err := ledger.AddOrReplace(name, qty, price); err != nil {
			if errors.Is(err, services.ErrInvalidLine) {
				fieldErrors["materials"] = "Each material needs a name, a positive quantity and a non-negative price."
			} else {
				fieldErrors["materials"] = "Could not add material line."
			}
		}
	}
	return ledger
}

// discountUnit labels the discount input for the deployment mode.
func discountUnit(mode services.PricingMode) string {
	if mode.Discount == services.DiscountFlat {
		return "$"
	}
	return "%"
}

func serviceOptions(selected string) []templates.SelectOption {
	opts := make([]templates.SelectOption, 0, len(services.ServiceTierOptions)+1)
	found := false
	for _, tier := range services.ServiceTierOptions {
		isSelected := tier == selected
		found = found || isSelected
		opts = append(opts, templates.SelectOption{Value: tier, Label: tier, Selected: isSelected})
	}
	// Free-text service values from older records still render selected.
	if selected != "" && !found {
		opts = append(opts, templates.SelectOption{Value: selected, Label: selected, Selected: true})
	}
	return opts
}

// buildQuoteFormData maps a quote onto the form's display strings.
func buildQuoteFormData(q services.Quote, isNew bool, mode services.PricingMode, fieldErrors map[string]string) templates.QuoteFormData {
	var rows []templates.MaterialRow
	if q.Materials != nil {
		for _, line := range q.Materials.Lines() {
			rows = append(rows, templates.MaterialRow{
				Name:      line.Name,
				Quantity:  strconv.FormatFloat(line.Quantity, 'f', -1, 64),
				UnitPrice: line.UnitPrice.Fixed(),
				LineTotal: line.LineTotal().Round().Format(),
			})
		}
	}

	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}

	return templates.QuoteFormData{
		ID:             q.ID,
		IsNew:          isNew,
		Name:           q.Name,
		Email:          q.Email,
		Phone:          q.Phone,
		Location:       q.Location,
		Service:        q.Service,
		Labor:          q.Labor.Fixed(),
		Fees:           q.Fees.Fixed(),
		Discount:       q.Discount.Fixed(),
		Days:           strconv.Itoa(q.Days),
		Workers:        strconv.Itoa(q.Workers),
		Materials:      rows,
		MaterialsTotal: q.MaterialsTotal.Format(),
		DiscountAmount: q.DiscountAmount.Format(),
		Total:          q.Total.Format(),
		DiscountUnit:   discountUnit(mode),
		ServiceOptions: serviceOptions(q.Service),
		Errors:         fieldErrors,
	}
}
