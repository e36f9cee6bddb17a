package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	pkgerrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/enums"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseCatalogFilter builds a catalog filter from the request query string.
// Absent parameters keep their defaults, so a bare request lists everything.
func ParseCatalogFilter(r *http.Request) (catalog.FilterState, error) {
	filter := catalog.NewFilterState()
	query := r.URL.Query()

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		filter.Category = strings.ToLower(category)
	}
	filter.Search = strings.TrimSpace(query.Get("search"))

	priceMin, err := ParseQueryInt(r, "price_min", catalog.DefaultPriceMin, 0, 1<<31)
	if err != nil {
		return catalog.FilterState{}, err
	}
	priceMax, err := ParseQueryInt(r, "price_max", catalog.DefaultPriceMax, 0, 1<<31)
	if err != nil {
		return catalog.FilterState{}, err
	}
	if priceMin > priceMax {
		return catalog.FilterState{}, pkgerrors.New(pkgerrors.CodeValidation, "price_min cannot exceed price_max").WithDetails(map[string]any{"price_min": priceMin, "price_max": priceMax})
	}
	filter.PriceMin = int64(priceMin)
	filter.PriceMax = int64(priceMax)

	filter.Colors = splitCSV(query["colors"])
	filter.Sizes = splitCSV(query["sizes"])

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		sortKey, err := enums.ParseSortKey(raw)
		if err != nil {
			return catalog.FilterState{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown sort key").WithDetails(map[string]any{"field": "sort"})
		}
		filter.SortBy = sortKey
	}

	return filter, nil
}

// splitCSV flattens repeated parameters and comma-separated lists into one
// slice, so both styles of multi-value query work.
func splitCSV(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
