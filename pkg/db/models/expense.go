package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	"gorm.io/gorm"
)

// Expense is a single recorded outgoing payment.
type Expense struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID             `gorm:"type:uuid;index;not null"`
	Recipient   string                `gorm:"not null"`
	Phone       string                `gorm:"not null"`
	AmountCents int64                 `gorm:"not null"`
	Date        string                `gorm:"not null;index"`
	Category    enums.ExpenseCategory `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
