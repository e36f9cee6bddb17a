package cart

import (
	"context"
	"testing"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	carts map[string]Cart
}

func newMemStore() *memStore {
	return &memStore{carts: make(map[string]Cart)}
}

func (m *memStore) Load(ctx context.Context, userID string) (Cart, error) {
	return m.carts[userID], nil
}

func (m *memStore) Save(ctx context.Context, userID string, cart Cart) error {
	m.carts[userID] = cart
	return nil
}

func (m *memStore) Clear(ctx context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

type stubProducts struct {
	byID map[int]catalog.Product
}

func (s stubProducts) Get(id int) (catalog.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	products := stubProducts{byID: map[int]catalog.Product{
		1: {ID: 1, Name: "Classic Navy Blazer", Price: 12999, Colors: []string{"Navy", "Black"}, Sizes: []string{"S", "M", "L"}},
		7: {ID: 7, Name: "Executive Gold Watch", Price: 25999, Colors: []string{"Gold"}},
		9: {ID: 9, Name: "Plain Pocket Square", Price: 4500},
	}}
	svc := NewService(store, products, logger.New(logger.Options{ServiceName: "test"}))
	return svc, store
}

func TestAddRequiresDeclaredSelections(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, nil, strPtr("M"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.As(err).Code())

	_, err = svc.Add(ctx, "u1", 1, strPtr("Navy"), nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.As(err).Code())

	_, err = svc.Add(ctx, "u1", 1, strPtr("Crimson"), strPtr("M"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.As(err).Code())

	// nothing persisted on validation failure
	assert.Empty(t, store.carts["u1"].Items)

	// products without declared options need no selections
	view, err := svc.Add(ctx, "u1", 9, nil, nil)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestAddSameSlotIncrementsQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)
	view, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	// a different size is a separate line
	view, err = svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("L"))
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
}

func TestBuyNowReplacesCart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", 9, nil, nil)
	require.NoError(t, err)

	view, err := svc.BuyNow(ctx, "u1", 7, strPtr("Gold"), nil)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 7, view.Items[0].ProductID)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "u1", 1, strPtr("Navy"), strPtr("M"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = svc.UpdateQuantity(ctx, "u1", 1, strPtr("Navy"), strPtr("M"), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestUpdateQuantityUnknownSlotIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "u1", 1, strPtr("Black"), strPtr("M"), 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)

	view, err := svc.Remove(ctx, "u1", 1, strPtr("Black"), strPtr("M"))
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	view, err = svc.Remove(ctx, "u1", 1, strPtr("Navy"), strPtr("M"))
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestTotalsShippingBoundary(t *testing.T) {
	cases := []struct {
		name         string
		items        []Item
		wantSubtotal int64
		wantShipping int64
		wantTotal    int64
	}{
		{
			name:         "below threshold pays flat fee",
			items:        []Item{{Price: 9500, Quantity: 1}},
			wantSubtotal: 9500,
			wantShipping: 500,
			wantTotal:    10000,
		},
		{
			name:         "exactly at threshold still pays",
			items:        []Item{{Price: 10000, Quantity: 1}},
			wantSubtotal: 10000,
			wantShipping: 500,
			wantTotal:    10500,
		},
		{
			name:         "above threshold ships free",
			items:        []Item{{Price: 10500, Quantity: 1}},
			wantSubtotal: 10500,
			wantShipping: 0,
			wantTotal:    10500,
		},
		{
			name:         "empty cart owes nothing",
			items:        nil,
			wantSubtotal: 0,
			wantShipping: 0,
			wantTotal:    0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Cart{Items: tc.items}.ComputeTotals()
			assert.Equal(t, tc.wantSubtotal, totals.SubtotalCents)
			assert.Equal(t, tc.wantShipping, totals.ShippingCents)
			assert.Equal(t, tc.wantTotal, totals.TotalCents)
		})
	}
}

func TestTotalsCountAllUnits(t *testing.T) {
	totals := Cart{Items: []Item{
		{Price: 3899, Quantity: 2},
		{Price: 4500, Quantity: 1},
	}}.ComputeTotals()
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, int64(12298), totals.SubtotalCents)
	assert.Equal(t, int64(0), totals.ShippingCents)
}

func TestClearEmptiesCart(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", 9, nil, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "u1"))
	assert.Empty(t, store.carts["u1"].Items)
}
