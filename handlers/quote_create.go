package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/services"
	"quoteadmin/templates"
)

// renderQuoteForm picks the fragment or the full page depending on how
// the request arrived.
func renderQuoteForm(e *core.RequestEvent, data templates.QuoteFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.QuoteFormContent(data)
	} else {
		component = templates.QuoteFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleQuoteCreate renders an empty quote form.
func HandleQuoteCreate(mode services.PricingMode) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		blank := services.Quote{
			Materials: services.NewLedger(),
			Days:      1,
			Workers:   1,
		}
		return renderQuoteForm(e, buildQuoteFormData(blank, true, mode, nil))
	}
}

// HandleQuoteSave creates a new quote from the submitted form.
func HandleQuoteSave(app *pocketbase.PocketBase, mode services.PricingMode) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q, fieldErrors := parseQuoteForm(e.Request)
		if len(fieldErrors) > 0 {
			SetToast(e, "error", "Please fix the highlighted fields.")
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
			return renderQuoteForm(e, buildQuoteFormData(q, true, mode, fieldErrors))
		}

		q.Reprice(mode)

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(quotesCol)
		if err := q.ApplyTo(rec); err != nil {
			log.Printf("quote_create: could not map quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if err := app.Save(rec); err != nil {
			log.Printf("quote_create: could not save quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quote. Please try again.")
		}

		SetToast(e, "success", "Quote created.")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes")
			return e.NoContent(http.StatusOK)
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}
