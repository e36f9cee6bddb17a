package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikedItem marks one catalog product a user has hearted.
type LikedItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_liked_items_user_product"`
	ProductID int       `gorm:"not null;uniqueIndex:idx_liked_items_user_product"`
	CreatedAt time.Time
}

func (l *LikedItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
