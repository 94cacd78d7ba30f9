package catalog

import "strings"

// AllCategories is the category value that matches every product.
const AllCategories = "all"

// Filter is the category + search criteria applied to the catalog view.
// The zero value is not ready; use NewFilter.
type Filter struct {
	category string
	search   string
}

// NewFilter returns a filter that shows every product.
func NewFilter() *Filter {
	return &Filter{category: AllCategories}
}

// SetCategory sets the active category. An empty value resets to "all".
func (f *Filter) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	f.category = category
}

// SetSearch sets the search text as typed.
func (f *Filter) SetSearch(text string) {
	f.search = text
}

// Category returns the active category.
func (f *Filter) Category() string { return f.category }

// Search returns the search text as typed.
func (f *Filter) Search() string { return f.search }

func (f *Filter) query() string {
	return strings.ToLower(strings.TrimSpace(f.search))
}

// IsVisible reports whether a product passes both the category and the
// search predicate. Search is a case-insensitive substring match on the name.
func (f *Filter) IsVisible(p Product) bool {
	matchesCategory := f.category == AllCategories || p.Category == f.category
	return matchesCategory && strings.Contains(strings.ToLower(p.Name), f.query())
}

// Visible returns the visible products in catalog order.
func (f *Filter) Visible(products []Product) []Product {
	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if f.IsVisible(p) {
			visible = append(visible, p)
		}
	}
	return visible
}
