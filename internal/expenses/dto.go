package expenses

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
)

// CreateRequest captures a new expense submission. Every field is required;
// the amount is in cents.
type CreateRequest struct {
	To       string `json:"to" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Amount   int64  `json:"amount_cents" validate:"required,gt=0"`
	Date     string `json:"date" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// Response is the API shape of a recorded expense.
type Response struct {
	ID          uuid.UUID             `json:"id"`
	To          string                `json:"to"`
	Phone       string                `json:"phone"`
	AmountCents int64                 `json:"amount_cents"`
	Date        string                `json:"date"`
	Category    enums.ExpenseCategory `json:"category"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToResponse maps a persisted expense onto its API shape.
func ToResponse(e models.Expense) Response {
	return Response{
		ID:          e.ID,
		To:          e.Recipient,
		Phone:       e.Phone,
		AmountCents: e.AmountCents,
		Date:        e.Date,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
	}
}

// ToResponses maps a list of expenses.
func ToResponses(items []models.Expense) []Response {
	out := make([]Response, 0, len(items))
	for _, e := range items {
		out = append(out, ToResponse(e))
	}
	return out
}

// Page is one page of expenses.
type Page struct {
	Items   []Response `json:"items"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int64      `json:"total"`
}

// Summary totals spending per category.
type Summary struct {
	Categories map[enums.ExpenseCategory]int64 `json:"categories"`
	TotalCents int64                           `json:"total_cents"`
}
