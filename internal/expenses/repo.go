package expenses

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes expense persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an expenses repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new expense row.
func (r *Repository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// ListByUser returns one page of the user's expenses, most recent date first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.Expense, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&models.Expense{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID loads an expense by id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// Delete removes the expense row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{}).Error
}

// SumByCategory returns the user's total spend per category.
func (r *Repository) SumByCategory(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("category, SUM(amount_cents) AS total").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Total
	}
	return out, nil
}
