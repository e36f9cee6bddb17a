package expenses

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	// DefaultPerPage matches the page size the tracker UI requests.
	DefaultPerPage = 50
	MaxPerPage     = 50

	dateLayout = "2006-01-02"
)

type repository interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.Expense, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SumByCategory(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// Service owns expense reads and writes.
type Service struct {
	repo   repository
	logger *logger.Logger
}

func NewService(repo repository, logg *logger.Logger) *Service {
	return &Service{repo: repo, logger: logg}
}

// List returns one page of the user's expenses, newest date first. Page
// numbers start at 1; the page size is capped.
func (s *Service) List(ctx context.Context, userID uuid.UUID, page, perPage int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	items, total, err := s.repo.ListByUser(ctx, userID, page, perPage)
	if err != nil {
		return Page{}, apperrors.Wrap(apperrors.CodeDependency, err, "listing expenses")
	}

	return Page{
		Items:   ToResponses(items),
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}

// Create validates and records a new expense for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (Response, error) {
	if strings.TrimSpace(req.To) == "" {
		return Response{}, apperrors.New(apperrors.CodeValidation, "recipient is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return Response{}, apperrors.New(apperrors.CodeValidation, "phone is required")
	}
	if req.Amount <= 0 {
		return Response{}, apperrors.New(apperrors.CodeValidation, "amount must be positive")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return Response{}, apperrors.New(apperrors.CodeValidation, "date must be formatted YYYY-MM-DD")
	}
	category, err := enums.ParseExpenseCategory(req.Category)
	if err != nil {
		return Response{}, apperrors.New(apperrors.CodeValidation, "category must be Needs, Wants, or Savings")
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Recipient:   strings.TrimSpace(req.To),
		Phone:       strings.TrimSpace(req.Phone),
		AmountCents: req.Amount,
		Date:        req.Date,
		Category:    category,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeDependency, err, "creating expense")
	}
	return ToResponse(*expense), nil
}

// Delete removes the user's expense. Foreign expenses read as missing.
func (s *Service) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "expense not found")
		}
		return apperrors.Wrap(apperrors.CodeDependency, err, "finding expense")
	}
	if expense.UserID != userID {
		return apperrors.New(apperrors.CodeNotFound, "expense not found")
	}

	if err := s.repo.Delete(ctx, expenseID); err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "deleting expense")
	}
	return nil
}

// Summarize totals the user's spending per category.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (Summary, error) {
	totals, err := s.repo.SumByCategory(ctx, userID)
	if err != nil {
		return Summary{}, apperrors.Wrap(apperrors.CodeDependency, err, "summarizing expenses")
	}

	summary := Summary{Categories: map[enums.ExpenseCategory]int64{}}
	for raw, cents := range totals {
		category, err := enums.ParseExpenseCategory(raw)
		if err != nil {
			// skip rows written before the category enum was enforced
			continue
		}
		summary.Categories[category] = cents
		summary.TotalCents += cents
	}
	return summary, nil
}
