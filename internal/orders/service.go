package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"gorm.io/gorm"
)

// Service exposes order reads and the cancel operation.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, logg *logger.Logger) *Service {
	return &Service{repo: repo, logger: logg}
}

// List returns the user's orders, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "listing orders")
	}
	return orders, nil
}

// Cancel deletes the order. Only the owning user may cancel, and only while
// the order is still pending; anything further along is refused.
func (s *Service) Cancel(ctx context.Context, userID, orderID uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "order not found")
		}
		return apperrors.Wrap(apperrors.CodeDependency, err, "finding order")
	}

	// hide other users' orders rather than acknowledging them
	if order.UserID != userID {
		return apperrors.New(apperrors.CodeNotFound, "order not found")
	}

	if order.Status != enums.OrderStatusPending {
		return apperrors.New(apperrors.CodeStateConflict, "only pending orders can be cancelled").
			WithDetails(map[string]string{"status": order.Status.String()})
	}

	if err := s.repo.Delete(ctx, orderID); err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "deleting order")
	}

	s.logger.Info(s.logger.WithField(ctx, "order_id", orderID.String()), "order cancelled")
	return nil
}
