package catalog

import (
	"context"

	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

// Facets describes the filterable dimensions of the inventory.
type Facets struct {
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
	PriceMin   int64    `json:"price_min"`
	PriceMax   int64    `json:"price_max"`
}

// Service exposes catalog reads to the API layer.
type Service struct {
	catalog *Catalog
	logger  *logger.Logger
}

func NewService(catalog *Catalog, logg *logger.Logger) *Service {
	return &Service{catalog: catalog, logger: logg}
}

// List returns the products matching the filter, sorted per its sort key.
func (s *Service) List(ctx context.Context, filter FilterState) []Product {
	return filter.Apply(s.catalog.products)
}

// Get returns a single product by id.
func (s *Service) Get(ctx context.Context, id int) (Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return Product{}, apperrors.New(apperrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// Facets returns the distinct filter dimensions for the inventory.
func (s *Service) Facets(ctx context.Context) Facets {
	return Facets{
		Categories: append([]string{CategoryAll}, s.catalog.Categories()...),
		Colors:     s.catalog.Colors(),
		Sizes:      s.catalog.Sizes(),
		PriceMin:   DefaultPriceMin,
		PriceMax:   DefaultPriceMax,
	}
}
