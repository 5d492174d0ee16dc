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

// fetchQuotes loads a snapshot of the quotes matching the field/value
// filter. Free-text filtering (empty field) happens in memory after the
// fetch; field filters are pushed down to the store.
func fetchQuotes(app *pocketbase.PocketBase, field, value string) ([]services.Quote, error) {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return nil, err
	}

	expr, params := services.BuildQuoteFilter(field, value)
	records, err := app.FindRecordsByFilter(quotesCol, expr, "", 0, 0, params)
	if err != nil {
		return nil, err
	}

	quotes := make([]services.Quote, 0, len(records))
	for _, rec := range records {
		quotes = append(quotes, services.QuoteFromRecord(rec))
	}

	if field == "" && value != "" {
		quotes = services.FilterQuotes(quotes, "", value)
	}
	return quotes, nil
}

func buildQuoteListData(quotes []services.Quote, filter templates.FilterState) templates.QuoteListData {
	sum := services.Zero
	items := make([]templates.QuoteListItem, 0, len(quotes))
	for _, q := range quotes {
		sum = sum.Add(q.Total)

		createdDate := "—"
		if !q.Created.IsZero() {
			createdDate = q.Created.Format("02 Jan 2006")
		}

		materialCount := 0
		if q.Materials != nil {
			materialCount = q.Materials.Len()
		}

		items = append(items, templates.QuoteListItem{
			ID:            q.ID,
			Name:          q.Name,
			Email:         q.Email,
			Location:      q.Location,
			Service:       q.Service,
			Total:         q.Total.Format(),
			MaterialCount: materialCount,
			CreatedDate:   createdDate,
		})
	}

	fieldOptions := make([]templates.SelectOption, 0, len(services.FilterFieldOptions))
	for _, o := range services.FilterFieldOptions {
		fieldOptions = append(fieldOptions, templates.SelectOption{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == filter.Field,
		})
	}

	sortOptions := make([]templates.SelectOption, 0, len(services.SortOptions))
	for _, o := range services.SortOptions {
		sortOptions = append(sortOptions, templates.SelectOption{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == filter.Sort,
		})
	}

	return templates.QuoteListData{
		Items:        items,
		TotalCount:   len(quotes),
		SumTotal:     sum.Round().Format(),
		Filter:       filter,
		FieldOptions: fieldOptions,
		SortOptions:  sortOptions,
	}
}

func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		filter := templates.FilterState{
			Field: query.Get("field"),
			Value: query.Get("value"),
			Sort:  query.Get("sort"),
		}
		if filter.Sort == "" {
			filter.Sort = services.SortDateNewest
		}

		quotes, err := fetchQuotes(app, filter.Field, filter.Value)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		quotes = services.SortQuotes(quotes, filter.Sort)

		data := buildQuoteListData(quotes, filter)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
