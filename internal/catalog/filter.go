package catalog

import (
	"sort"
	"strings"

	"github.com/marwandev/formalflow-backend/pkg/enums"
)

const (
	CategoryAll = "all"

	DefaultPriceMin = 0
	DefaultPriceMax = 30000
)

// FilterState captures one catalog query. The zero value matches nothing
// useful, so build it with NewFilterState.
type FilterState struct {
	Category string
	Search   string
	PriceMin int64
	PriceMax int64
	Colors   []string
	Sizes    []string
	SortBy   enums.SortKey
}

// NewFilterState returns the default view of the catalog: every category,
// default price window, name ordering.
func NewFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		SortBy:   enums.SortKeyName,
	}
}

// Matches reports whether the product passes every active predicate.
// Predicates are conjunctive; an empty color/size selection matches all.
func (f FilterState) Matches(p Product) bool {
	if f.Category != CategoryAll && p.Category != f.Category {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}

	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}

	if len(f.Colors) > 0 && !anyOverlap(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !anyOverlap(p.Sizes, f.Sizes) {
		return false
	}

	return true
}

func anyOverlap(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Apply filters then sorts the given products. The input slice is not
// modified.
func (f FilterState) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.SortBy)
	return out
}

func sortProducts(products []Product, key enums.SortKey) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case enums.SortKeyPriceLow:
			return a.Price < b.Price
		case enums.SortKeyPriceHigh:
			return a.Price > b.Price
		case enums.SortKeyRating:
			return a.Rating > b.Rating
		case enums.SortKeyReviews:
			return a.Reviews > b.Reviews
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
}
