package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	"github.com/marwandev/formalflow-backend/pkg/types"
)

// Response is the API shape of a placed order.
type Response struct {
	ID              uuid.UUID         `json:"id"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	DeliveryAddress string            `json:"delivery_address"`
	DeliveryDate    string            `json:"delivery_date"`
	Lines           types.OrderLines  `json:"lines"`
	TotalCents      int64             `json:"total_cents"`
	Status          enums.OrderStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ToResponse maps a persisted order onto its API shape.
func ToResponse(order models.Order) Response {
	return Response{
		ID:              order.ID,
		Email:           order.Email,
		Phone:           order.Phone,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate,
		Lines:           order.Lines,
		TotalCents:      order.TotalCents,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
}

// ToResponses maps a list of orders.
func ToResponses(orders []models.Order) []Response {
	out := make([]Response, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToResponse(o))
	}
	return out
}
