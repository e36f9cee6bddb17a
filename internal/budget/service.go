package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"gorm.io/gorm"
)

type userSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type spendingSource interface {
	SumByCategory(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// Overview pairs the salary plan with actual spending per bucket.
type Overview struct {
	Plan  Plan             `json:"plan"`
	Spent map[string]int64 `json:"spent"`
}

// Service derives budget overviews from the user's salary and expenses.
type Service struct {
	users    userSource
	spending spendingSource
}

func NewService(users userSource, spending spendingSource) *Service {
	return &Service{users: users, spending: spending}
}

// Overview returns the user's 50/30/20 plan alongside their recorded
// spending in each bucket.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID) (Overview, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Overview{}, apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return Overview{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading user")
	}

	totals, err := s.spending.SumByCategory(ctx, userID)
	if err != nil {
		return Overview{}, apperrors.Wrap(apperrors.CodeDependency, err, "loading spending totals")
	}

	spent := map[string]int64{
		enums.ExpenseCategoryNeeds.String():   totals[enums.ExpenseCategoryNeeds.String()],
		enums.ExpenseCategoryWants.String():   totals[enums.ExpenseCategoryWants.String()],
		enums.ExpenseCategorySavings.String(): totals[enums.ExpenseCategorySavings.String()],
	}

	return Overview{
		Plan:  Split(user.SalaryCents),
		Spent: spent,
	}, nil
}
