package services

// ExportRow is one quote in the register export (CSV or Excel).
type ExportRow struct {
	Name     string
	Email    string
	Estimate string // formatted total
	Details  string // service + location summary
	Date     string
}

// ExportData holds everything the register exporters need.
type ExportData struct {
	Rows       []ExportRow
	TotalCount int
	SumTotal   string // formatted grand total across rows
}

// QuoteDocumentLine is one materials line on the printable quote.
type QuoteDocumentLine struct {
	Name      string
	Quantity  float64
	UnitPrice string
	LineTotal string
}

// QuoteDocumentData holds a single fully derived quote for the PDF
// renderer. All money values arrive already rounded and formatted; the
// renderer applies no business logic.
type QuoteDocumentData struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Service  string
	Days     int
	Workers  int
	Date     string

	Lines []QuoteDocumentLine

	MaterialsTotal string
	Labor          string
	Fees           string
	DiscountLabel  string // e.g. "Discount (10%)" or "Discount"
	DiscountAmount string
	Total          string
}

// BuildExportData flattens a quote snapshot into register export rows.
func BuildExportData(quotes []Quote) ExportData {
	var rows []ExportRow
	sum := Zero
	for _, q := range quotes {
		details := q.Service
		if q.Location != "" {
			if details != "" {
				details += " - "
			}
			details += q.Location
		}
		date := ""
		if !q.Created.IsZero() {
			date = q.Created.Format("02 Jan 2006")
		}
		rows = append(rows, ExportRow{
			Name:     q.Name,
			Email:    q.Email,
			Estimate: q.Total.Format(),
			Details:  details,
			Date:     date,
		})
		sum = sum.Add(q.Total)
	}
	return ExportData{
		Rows:       rows,
		TotalCount: len(rows),
		SumTotal:   sum.Format(),
	}
}

// BuildQuoteDocument prepares a single quote for the PDF renderer under
// the deployment pricing mode (used only to label the discount line).
func BuildQuoteDocument(q Quote, mode PricingMode) QuoteDocumentData {
	var lines []QuoteDocumentLine
	if q.Materials != nil {
		for _, l := range q.Materials.Lines() {
			lines = append(lines, QuoteDocumentLine{
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice.Format(),
				LineTotal: l.LineTotal().Round().Format(),
			})
		}
	}

	discountLabel := "Discount"
	if mode.Discount == DiscountPercent && !q.Discount.IsZero() {
		discountLabel = "Discount (" + q.Discount.Format() + "%)"
	}

	date := ""
	if !q.Created.IsZero() {
		date = q.Created.Format("02 Jan 2006")
	}

	return QuoteDocumentData{
		Name:           q.Name,
		Email:          q.Email,
		Phone:          q.Phone,
		Location:       q.Location,
		Service:        q.Service,
		Days:           q.Days,
		Workers:        q.Workers,
		Date:           date,
		Lines:          lines,
		MaterialsTotal: q.MaterialsTotal.Format(),
		Labor:          q.Labor.Format(),
		Fees:           q.Fees.Format(),
		DiscountLabel:  discountLabel,
		DiscountAmount: q.DiscountAmount.Format(),
		Total:          q.Total.Format(),
	}
}
