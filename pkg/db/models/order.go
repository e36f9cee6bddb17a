package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	"github.com/marwandev/formalflow-backend/pkg/types"
	"gorm.io/gorm"
)

// Order is a placed order. Lines snapshot the cart at checkout time so
// later catalog edits never rewrite order history.
type Order struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID         `gorm:"type:uuid;index;not null"`
	Email           string            `gorm:"not null"`
	Phone           string            `gorm:"not null"`
	DeliveryAddress string            `gorm:"not null"`
	DeliveryDate    string            `gorm:"not null"`
	Lines           types.OrderLines  `gorm:"serializer:json;not null"`
	TotalCents      int64             `gorm:"not null"`
	Status          enums.OrderStatus `gorm:"not null;default:'pending'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
