package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/services"
)

// HandleQuoteEdit renders the edit form populated from the stored record.
func HandleQuoteEdit(app *pocketbase.PocketBase, mode services.PricingMode) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		rec, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_edit: quote %s not found: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		q := services.QuoteFromRecord(rec)
		return renderQuoteForm(e, buildQuoteFormData(q, false, mode, nil))
	}
}

// HandleQuoteUpdate saves the submitted form over an existing record.
// The form is the edit buffer: nothing touches the store until this
// handler runs, and the save replaces the record's fields wholesale.
func HandleQuoteUpdate(app *pocketbase.PocketBase, mode services.PricingMode) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		rec, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_update: quote %s not found: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q, fieldErrors := parseQuoteForm(e.Request)
		q.ID = quoteID
		if len(fieldErrors) > 0 {
			SetToast(e, "error", "Please fix the highlighted fields.")
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
			return renderQuoteForm(e, buildQuoteFormData(q, false, mode, fieldErrors))
		}

		q.Reprice(mode)

		if err := q.ApplyTo(rec); err != nil {
			log.Printf("quote_update: could not map quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if err := app.Save(rec); err != nil {
			log.Printf("quote_update: could not save quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quote. Please try again.")
		}

		SetToast(e, "success", "Quote saved.")
		return renderQuoteForm(e, buildQuoteFormData(q, false, mode, nil))
	}
}
