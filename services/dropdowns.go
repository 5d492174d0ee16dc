package services

// ServiceTierOptions lists the enumerated service tiers offered on the
// estimate form. The service field also accepts free text for jobs that
// do not fit a tier.
var ServiceTierOptions = []string{
	"Handyman",
	"Painting",
	"Drywall",
	"Flooring",
	"Plumbing",
	"Electrical",
	"Landscaping",
	"Pressure Washing",
	"Gutter Cleaning",
	"Remodel",
	"Other",
}

// FilterFieldOption is one entry in the filter field selector.
type FilterFieldOption struct {
	Value string
	Label string
}

// FilterFieldOptions lists the fields the list page can filter by. An
// empty value means free-text search across name, location and service.
var FilterFieldOptions = []FilterFieldOption{
	{Value: "", Label: "All fields"},
	{Value: "name", Label: "Client name"},
	{Value: "email", Label: "Email"},
	{Value: "phone", Label: "Phone"},
	{Value: "location", Label: "Location"},
	{Value: "service", Label: "Service"},
	{Value: "total", Label: "Total"},
	{Value: "labor", Label: "Labor"},
	{Value: "materials_total", Label: "Materials total"},
	{Value: "discount", Label: "Discount"},
	{Value: "fees", Label: "Fees"},
}

// SortOption is one entry in the sort selector.
type SortOption struct {
	Value string
	Label string
}

// SortOptions lists the supported orderings of the quote list.
var SortOptions = []SortOption{
	{Value: SortDateNewest, Label: "Newest first"},
	{Value: SortDateOldest, Label: "Oldest first"},
	{Value: SortPriceHigh, Label: "Highest total"},
	{Value: SortPriceLow, Label: "Lowest total"},
	{Value: SortNameAsc, Label: "Name A-Z"},
	{Value: SortNameDesc, Label: "Name Z-A"},
}
