// Package templates renders the console's HTML. Components implement
// templ.Component so handlers can render a full page or an HTMX
// fragment through the same interface.
package templates

// LoginData feeds the password gate page.
type LoginData struct {
	Error string
}

// FilterState echoes the list controls back into the filter bar.
type FilterState struct {
	Field string
	Value string
	Sort  string
}

// SelectOption is one entry of a dropdown.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// QuoteListItem is one pre-formatted row of the quotes table.
type QuoteListItem struct {
	ID            string
	Name          string
	Email         string
	Location      string
	Service       string
	Total         string
	MaterialCount int
	CreatedDate   string
}

// QuoteListData feeds the list page and its table fragment.
type QuoteListData struct {
	Items      []QuoteListItem
	TotalCount int
	SumTotal   string

	Filter       FilterState
	FieldOptions []SelectOption
	SortOptions  []SelectOption
}

// MaterialRow is one editable material line of the quote form.
type MaterialRow struct {
	Name      string
	Quantity  string
	UnitPrice string
	LineTotal string
}

// QuoteFormData feeds both the create and the edit form.
type QuoteFormData struct {
	ID    string
	IsNew bool

	Name     string
	Email    string
	Phone    string
	Location string
	Service  string
	Labor    string
	Fees     string
	Discount string
	Days     string
	Workers  string

	Materials []MaterialRow

	MaterialsTotal string
	DiscountAmount string
	Total          string

	// DiscountUnit is "%" or the currency marker depending on the
	// deployment's discount mode.
	DiscountUnit string

	ServiceOptions []SelectOption

	// Errors maps field name to validation message.
	Errors map[string]string
}
