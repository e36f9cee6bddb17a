package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed products.json
var seedData []byte

// Product is a single catalog entry. Prices are in cents.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Brand    string   `json:"brand"`
	Colors   []string `json:"colors,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
}

// HasColors reports whether the product requires a color selection.
func (p Product) HasColors() bool { return len(p.Colors) > 0 }

// HasSizes reports whether the product requires a size selection.
func (p Product) HasSizes() bool { return len(p.Sizes) > 0 }

// HasColor reports whether the product offers the named color.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// HasSize reports whether the product offers the named size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Catalog holds the product inventory in memory, indexed by id.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// Load parses the embedded seed into a Catalog.
func Load() (*Catalog, error) {
	return loadFrom(seedData)
}

func loadFrom(data []byte) (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog seed: %w", err)
	}

	byID := make(map[int]Product, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d in catalog seed", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Products returns the full inventory in seed order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the inventory size.
func (c *Catalog) Len() int { return len(c.products) }

// Categories returns the distinct categories present in the inventory, sorted.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	for _, p := range c.products {
		seen[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Colors returns the distinct colors offered across the inventory, sorted.
func (c *Catalog) Colors() []string {
	return c.distinct(func(p Product) []string { return p.Colors })
}

// Sizes returns the distinct sizes offered across the inventory, sorted.
func (c *Catalog) Sizes() []string {
	return c.distinct(func(p Product) []string { return p.Sizes })
}

func (c *Catalog) distinct(pick func(Product) []string) []string {
	seen := map[string]struct{}{}
	for _, p := range c.products {
		for _, v := range pick(p) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
