package cart

// Item is one cart line. Two lines are the same "slot" only when product,
// color, and size all match.
type Item struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	Quantity  int     `json:"quantity"`
	Color     *string `json:"color,omitempty"`
	Size      *string `json:"size,omitempty"`
}

// Matches reports whether the line occupies the same slot as the given
// product/color/size combination.
func (i Item) Matches(productID int, color, size *string) bool {
	return i.ProductID == productID && strPtrEq(i.Color, color) && strPtrEq(i.Size, size)
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Cart is one user's cart document as persisted in Redis.
type Cart struct {
	Items []Item `json:"items"`
}

// Totals summarizes a cart for display and checkout.
type Totals struct {
	ItemCount     int   `json:"item_count"`
	SubtotalCents int64 `json:"subtotal_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// FreeShippingThresholdCents is the subtotal above which shipping is waived.
// The boundary is strict: a subtotal exactly at the threshold still pays.
const FreeShippingThresholdCents int64 = 10000

// ShippingFeeCents is the flat fee applied below the free shipping threshold.
const ShippingFeeCents int64 = 500

// ComputeTotals derives totals from the cart lines.
func (c Cart) ComputeTotals() Totals {
	var t Totals
	for _, item := range c.Items {
		t.ItemCount += item.Quantity
		t.SubtotalCents += item.Price * int64(item.Quantity)
	}
	if t.SubtotalCents > 0 && t.SubtotalCents <= FreeShippingThresholdCents {
		t.ShippingCents = ShippingFeeCents
	}
	t.TotalCents = t.SubtotalCents + t.ShippingCents
	return t
}
