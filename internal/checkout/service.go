package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/internal/cart"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"github.com/marwandev/formalflow-backend/pkg/types"
)

type cartReader interface {
	Get(ctx context.Context, userID string) (cart.View, error)
	Clear(ctx context.Context, userID string) error
}

type orderWriter interface {
	Create(ctx context.Context, order *models.Order) error
}

// Service turns a validated cart into a persisted order.
type Service struct {
	carts  cartReader
	orders orderWriter
	logger *logger.Logger
	now    func() time.Time
}

func NewService(carts cartReader, orders orderWriter, logg *logger.Logger) *Service {
	return &Service{
		carts:  carts,
		orders: orders,
		logger: logg,
		now:    time.Now,
	}
}

// Dates returns the currently offered delivery dates.
func (s *Service) Dates(ctx context.Context) []string {
	return DeliveryDates(s.now())
}

// Submit validates the draft against the live cart, persists the order with
// a line snapshot, and clears the cart. The cart survives any failure.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, draft Draft) (*models.Order, error) {
	if err := draft.Validate(s.now()); err != nil {
		return nil, err
	}

	view, err := s.carts.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "cart is empty")
	}

	lines := make(types.OrderLines, 0, len(view.Items))
	for _, item := range view.Items {
		lines = append(lines, types.OrderLine{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.Price,
			Color:          item.Color,
			Size:           item.Size,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Email:           draft.Email,
		Phone:           draft.Phone,
		DeliveryAddress: draft.DeliveryAddress,
		DeliveryDate:    draft.DeliveryDate,
		Lines:           lines,
		TotalCents:      view.Totals.TotalCents,
		Status:          enums.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "persisting order")
	}

	if err := s.carts.Clear(ctx, userID.String()); err != nil {
		// the order exists at this point; surface the failure but keep it
		s.logger.Error(ctx, "clearing cart after checkout", err)
	}

	return order, nil
}
