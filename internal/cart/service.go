package cart

import (
	"context"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

type cartStore interface {
	Load(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, userID string, cart Cart) error
	Clear(ctx context.Context, userID string) error
}

type productSource interface {
	Get(id int) (catalog.Product, bool)
}

// View is the cart plus derived totals, as returned to clients.
type View struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

// Service owns all cart mutations. Every mutation re-reads the stored cart,
// applies the change, and persists the result.
type Service struct {
	store    cartStore
	products productSource
	logger   *logger.Logger
}

func NewService(store cartStore, products productSource, logg *logger.Logger) *Service {
	return &Service{store: store, products: products, logger: logg}
}

// Get returns the user's cart with totals.
func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading cart")
	}
	return viewOf(cart), nil
}

// Add puts one unit of the product into the cart. Adding a combination that
// is already present bumps that line's quantity instead of creating a new
// line.
func (s *Service) Add(ctx context.Context, userID string, productID int, color, size *string) (View, error) {
	product, err := s.resolveProduct(productID, color, size)
	if err != nil {
		return View{}, err
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading cart")
	}

	cart = addLine(cart, product, color, size)

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "saving cart")
	}
	return viewOf(cart), nil
}

// BuyNow replaces the whole cart with a single line for the product.
func (s *Service) BuyNow(ctx context.Context, userID string, productID int, color, size *string) (View, error) {
	product, err := s.resolveProduct(productID, color, size)
	if err != nil {
		return View{}, err
	}

	cart := Cart{Items: []Item{{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Color:     color,
		Size:      size,
	}}}

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "saving cart")
	}
	return viewOf(cart), nil
}

// UpdateQuantity sets the quantity on the matching line. Quantities below 1
// and lines that do not exist are ignored rather than rejected.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID int, color, size *string, quantity int) (View, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading cart")
	}

	if quantity >= 1 {
		for i := range cart.Items {
			if cart.Items[i].Matches(productID, color, size) {
				cart.Items[i].Quantity = quantity
				break
			}
		}
		if err := s.store.Save(ctx, userID, cart); err != nil {
			return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "saving cart")
		}
	}

	return viewOf(cart), nil
}

// Remove drops the matching line. Removing an absent line is a no-op.
func (s *Service) Remove(ctx context.Context, userID string, productID int, color, size *string) (View, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading cart")
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !item.Matches(productID, color, size) {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "saving cart")
	}
	return viewOf(cart), nil
}

// Clear empties the user's cart.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Clear(ctx, userID); err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *Service) resolveProduct(productID int, color, size *string) (catalog.Product, error) {
	product, ok := s.products.Get(productID)
	if !ok {
		return catalog.Product{}, apperrors.New(apperrors.CodeNotFound, "product not found")
	}

	if product.HasColors() {
		if color == nil || *color == "" {
			return catalog.Product{}, apperrors.New(apperrors.CodeValidation, "color selection is required for this product")
		}
		if !product.HasColor(*color) {
			return catalog.Product{}, apperrors.New(apperrors.CodeValidation, "selected color is not offered for this product")
		}
	}
	if product.HasSizes() {
		if size == nil || *size == "" {
			return catalog.Product{}, apperrors.New(apperrors.CodeValidation, "size selection is required for this product")
		}
		if !product.HasSize(*size) {
			return catalog.Product{}, apperrors.New(apperrors.CodeValidation, "selected size is not offered for this product")
		}
	}

	return product, nil
}

func addLine(cart Cart, product catalog.Product, color, size *string) Cart {
	for i := range cart.Items {
		if cart.Items[i].Matches(product.ID, color, size) {
			cart.Items[i].Quantity++
			return cart
		}
	}
	cart.Items = append(cart.Items, Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Color:     color,
		Size:      size,
	})
	return cart
}

func viewOf(cart Cart) View {
	items := cart.Items
	if items == nil {
		items = []Item{}
	}
	return View{Items: items, Totals: cart.ComputeTotals()}
}
