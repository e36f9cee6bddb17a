package enums

import "fmt"

// ExpenseCategory buckets an expense into the 50/30/20 plan.
type ExpenseCategory string

const (
	ExpenseCategoryNeeds   ExpenseCategory = "Needs"
	ExpenseCategoryWants   ExpenseCategory = "Wants"
	ExpenseCategorySavings ExpenseCategory = "Savings"
)

var validExpenseCategories = []ExpenseCategory{
	ExpenseCategoryNeeds,
	ExpenseCategoryWants,
	ExpenseCategorySavings,
}

// String implements fmt.Stringer.
func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ExpenseCategory.
func (c ExpenseCategory) IsValid() bool {
	for _, candidate := range validExpenseCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseExpenseCategory converts raw input into an ExpenseCategory.
func ParseExpenseCategory(value string) (ExpenseCategory, error) {
	for _, candidate := range validExpenseCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid expense category %q", value)
}
