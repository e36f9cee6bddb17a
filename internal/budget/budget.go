package budget

import (
	"github.com/marwandev/formalflow-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Plan is a 50/30/20 split of a monthly salary, in cents. Rounding
// remainders land in Savings so the parts always sum to the salary.
type Plan struct {
	SalaryCents  int64 `json:"salary_cents"`
	NeedsCents   int64 `json:"needs_cents"`
	WantsCents   int64 `json:"wants_cents"`
	SavingsCents int64 `json:"savings_cents"`
}

var (
	needsRate = decimal.NewFromFloat(0.5)
	wantsRate = decimal.NewFromFloat(0.3)
)

// Split allocates the salary across the three buckets.
func Split(salaryCents int64) Plan {
	if salaryCents <= 0 {
		return Plan{SalaryCents: salaryCents}
	}

	salary := decimal.NewFromInt(salaryCents)
	needs := salary.Mul(needsRate).Floor().IntPart()
	wants := salary.Mul(wantsRate).Floor().IntPart()
	savings := salaryCents - needs - wants

	return Plan{
		SalaryCents:  salaryCents,
		NeedsCents:   needs,
		WantsCents:   wants,
		SavingsCents: savings,
	}
}

// CategoryBudget returns the planned amount for an expense category.
func (p Plan) CategoryBudget(category enums.ExpenseCategory) int64 {
	switch category {
	case enums.ExpenseCategoryNeeds:
		return p.NeedsCents
	case enums.ExpenseCategoryWants:
		return p.WantsCents
	case enums.ExpenseCategorySavings:
		return p.SavingsCents
	default:
		return 0
	}
}
