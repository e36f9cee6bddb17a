package likes

import (
	"context"

	"github.com/google/uuid"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

type repository interface {
	Add(ctx context.Context, userID uuid.UUID, productID int) error
	Remove(ctx context.Context, userID uuid.UUID, productID int) error
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]int, error)
}

type productSource interface {
	Get(id int) (catalog.Product, bool)
}

// View is the user's liked products plus the bare id set the storefront
// uses to paint heart states.
type View struct {
	Products   []catalog.Product `json:"products"`
	ProductIDs []int             `json:"product_ids"`
}

// Service owns the per-user liked-products set.
type Service struct {
	repo     repository
	products productSource
	logger   *logger.Logger
}

func NewService(repo repository, products productSource, logg *logger.Logger) *Service {
	return &Service{repo: repo, products: products, logger: logg}
}

// List returns everything the user has liked, most recent first. Ids that no
// longer resolve in the catalog are dropped from the product list.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (View, error) {
	ids, err := s.repo.ListProductIDs(ctx, userID)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "listing liked items")
	}

	view := View{Products: []catalog.Product{}, ProductIDs: []int{}}
	for _, id := range ids {
		product, ok := s.products.Get(id)
		if !ok {
			continue
		}
		view.Products = append(view.Products, product)
		view.ProductIDs = append(view.ProductIDs, id)
	}
	return view, nil
}

// Like marks the product as liked. Liking twice is a no-op.
func (s *Service) Like(ctx context.Context, userID uuid.UUID, productID int) (View, error) {
	if _, ok := s.products.Get(productID); !ok {
		return View{}, apperrors.New(apperrors.CodeNotFound, "product not found")
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "saving liked item")
	}
	return s.List(ctx, userID)
}

// Unlike removes the like. Removing an absent like is a no-op.
func (s *Service) Unlike(ctx context.Context, userID uuid.UUID, productID int) (View, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeDependency, err, "removing liked item")
	}
	return s.List(ctx, userID)
}
