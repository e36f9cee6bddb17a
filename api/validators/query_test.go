package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	pkgerrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/items?page=3", nil)

	got, err := ParseQueryInt(r, "page", 1, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = ParseQueryInt(r, "per_page", 50, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	r = httptest.NewRequest("GET", "/items?page=abc", nil)
	_, err = ParseQueryInt(r, "page", 1, 1, 100)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	r = httptest.NewRequest("GET", "/items?page=101", nil)
	_, err = ParseQueryInt(r, "page", 1, 1, 100)
	require.Error(t, err)
}

func TestParseCatalogFilterDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	filter, err := ParseCatalogFilter(r)
	require.NoError(t, err)

	assert.Equal(t, catalog.CategoryAll, filter.Category)
	assert.Empty(t, filter.Search)
	assert.Equal(t, int64(catalog.DefaultPriceMin), filter.PriceMin)
	assert.Equal(t, int64(catalog.DefaultPriceMax), filter.PriceMax)
	assert.Empty(t, filter.Colors)
	assert.Empty(t, filter.Sizes)
	assert.Equal(t, enums.SortKeyName, filter.SortBy)
}

func TestParseCatalogFilterFull(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?category=Blazers&search=wool&price_min=2000&price_max=9000&colors=Black,Navy&sizes=M&sizes=L&sort=price-low", nil)

	filter, err := ParseCatalogFilter(r)
	require.NoError(t, err)

	assert.Equal(t, "blazers", filter.Category)
	assert.Equal(t, "wool", filter.Search)
	assert.Equal(t, int64(2000), filter.PriceMin)
	assert.Equal(t, int64(9000), filter.PriceMax)
	assert.Equal(t, []string{"Black", "Navy"}, filter.Colors)
	assert.Equal(t, []string{"M", "L"}, filter.Sizes)
	assert.Equal(t, enums.SortKeyPriceLow, filter.SortBy)
}

func TestParseCatalogFilterRejectsBadInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?price_min=5000&price_max=100", nil)
	_, err := ParseCatalogFilter(r)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	r = httptest.NewRequest("GET", "/products?sort=cheapest", nil)
	_, err = ParseCatalogFilter(r)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
