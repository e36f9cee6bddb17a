package types

// OrderLine is the immutable snapshot of a purchased cart line. It is
// serialized as JSON into the orders table so later catalog edits cannot
// rewrite history.
type OrderLine struct {
	ProductID      int     `json:"product_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	Color          *string `json:"color,omitempty"`
	Size           *string `json:"size,omitempty"`
}

// OrderLines exists so GORM's JSON serializer has a named slice target.
type OrderLines []OrderLine
