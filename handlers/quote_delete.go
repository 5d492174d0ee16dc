package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/services"
	"quoteadmin/templates"
)

// HandleQuoteDelete removes a quote and re-renders the list fragment so
// HTMX can swap the table in place.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		rec, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_delete: quote %s not found: %v", quoteID, err)
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete quote. Please try again.")
		}

		SetToast(e, "success", "Quote deleted.")

		filter := templates.FilterState{Sort: services.SortDateNewest}
		quotes, err := fetchQuotes(app, "", "")
		if err != nil {
			log.Printf("quote_delete: could not reload quotes: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		quotes = services.SortQuotes(quotes, filter.Sort)

		data := buildQuoteListData(quotes, filter)
		return templates.QuoteListContent(data).Render(e.Request.Context(), e.Response)
	}
}
