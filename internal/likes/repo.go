package likes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marwandev/formalflow-backend/pkg/db/models"
)

// Repository encapsulates liked-item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a likes repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add records the like, ignoring duplicates.
func (r *Repository) Add(ctx context.Context, userID uuid.UUID, productID int) error {
	item := models.LikedItem{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&item).Error
}

// Remove deletes the like if it exists.
func (r *Repository) Remove(ctx context.Context, userID uuid.UUID, productID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.LikedItem{}).Error
}

// ListProductIDs returns the user's liked product ids, most recent first.
func (r *Repository) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).
		Model(&models.LikedItem{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
