package catalog

import "strings"

// Featured filter values.
const (
	FeaturedAll  = "all"
	FeaturedOnly = "featured"
	RegularOnly  = "regular"
)

// Filter is the composable product filter. The zero value with Featured set
// to FeaturedAll matches everything; SubCategoryID 0 means "all".
type Filter struct {
	Search        string
	SubCategoryID int
	Featured      string
}

// Apply returns the products matching all three predicates, in input order.
// The search term matches case-insensitively against name and description.
func (f Filter) Apply(products []Product) []Product {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if f.SubCategoryID != 0 && p.SubCategoryID != f.SubCategoryID {
			continue
		}
		switch f.Featured {
		case FeaturedOnly:
			if !p.IsFeatured {
				continue
			}
		case RegularOnly:
			if p.IsFeatured {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}

// Page is 1-based pagination state.
type Page struct {
	Index int
	Size  int
}

// TotalPages for a filtered set of n items; never below 1 so an empty result
// still renders page 1 of 1.
func (p Page) TotalPages(n int) int {
	if p.Size <= 0 {
		return 1
	}
	total := (n + p.Size - 1) / p.Size
	if total < 1 {
		total = 1
	}
	return total
}

// Clamp returns the page with its index forced into [1, TotalPages(n)].
func (p Page) Clamp(n int) Page {
	total := p.TotalPages(n)
	if p.Index < 1 {
		p.Index = 1
	}
	if p.Index > total {
		p.Index = total
	}
	return p
}

// Paginate slices the filtered set down to the visible page.
func Paginate(filtered []Product, page Page) (items []Product, totalPages int) {
	totalPages = page.TotalPages(len(filtered))
	page = page.Clamp(len(filtered))

	start := (page.Index - 1) * page.Size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + page.Size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages
}
