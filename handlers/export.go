package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportSnapshot loads the quotes under the same filter/sort params the
// list page uses, so a download matches what is on screen.
func exportSnapshot(app *pocketbase.PocketBase, e *core.RequestEvent) ([]services.Quote, error) {
	query := e.Request.URL.Query()
	quotes, err := fetchQuotes(app, query.Get("field"), query.Get("value"))
	if err != nil {
		return nil, err
	}
	sortKey := query.Get("sort")
	if sortKey == "" {
		sortKey = services.SortDateNewest
	}
	return services.SortQuotes(quotes, sortKey), nil
}

// HandleQuotesExportCSV downloads the current quote list as CSV.
func HandleQuotesExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := exportSnapshot(app, e)
		if err != nil {
			log.Printf("export_csv: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotes")
		}

		csvBytes, err := services.GenerateCSV(services.BuildExportData(quotes))
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("estimates_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleQuotesExportExcel downloads the current quote list as an Excel workbook.
func HandleQuotesExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := exportSnapshot(app, e)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotes")
		}

		xlsxBytes, err := services.GenerateExcel(services.BuildExportData(quotes))
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("estimates_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF downloads a single quote as a client-facing
// estimate document.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, mode services.PricingMode) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		rec, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("export_pdf: quote %s not found: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		q := services.QuoteFromRecord(rec)
		doc := services.BuildQuoteDocument(q, mode)

		pdfBytes, err := services.GenerateQuotePDF(doc)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		client := q.Name
		if client == "" {
			client = quoteID
		}
		filename := fmt.Sprintf("Estimate_%s_%d.pdf", sanitizeFilename(client), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
