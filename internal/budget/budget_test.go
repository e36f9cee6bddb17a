package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
	"github.com/marwandev/formalflow-backend/pkg/enums"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSplitEvenSalary(t *testing.T) {
	plan := Split(500000)
	assert.Equal(t, int64(250000), plan.NeedsCents)
	assert.Equal(t, int64(150000), plan.WantsCents)
	assert.Equal(t, int64(100000), plan.SavingsCents)
}

func TestSplitRemainderFoldsIntoSavings(t *testing.T) {
	cases := []int64{1, 3, 7, 99, 101, 12345, 333333}
	for _, salary := range cases {
		plan := Split(salary)
		assert.Equal(t, salary, plan.NeedsCents+plan.WantsCents+plan.SavingsCents,
			"parts must sum to salary %d", salary)
		assert.GreaterOrEqual(t, plan.SavingsCents, salary/5,
			"remainder lands in savings for salary %d", salary)
	}
}

func TestSplitNonPositiveSalary(t *testing.T) {
	for _, salary := range []int64{0, -100} {
		plan := Split(salary)
		assert.Equal(t, int64(0), plan.NeedsCents)
		assert.Equal(t, int64(0), plan.WantsCents)
		assert.Equal(t, int64(0), plan.SavingsCents)
	}
}

func TestCategoryBudget(t *testing.T) {
	plan := Split(100000)
	assert.Equal(t, plan.NeedsCents, plan.CategoryBudget(enums.ExpenseCategoryNeeds))
	assert.Equal(t, plan.WantsCents, plan.CategoryBudget(enums.ExpenseCategoryWants))
	assert.Equal(t, plan.SavingsCents, plan.CategoryBudget(enums.ExpenseCategorySavings))
	assert.Equal(t, int64(0), plan.CategoryBudget("Misc"))
}

type stubUsers struct {
	user *models.User
}

func (s stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

type stubSpending struct {
	totals map[string]int64
}

func (s stubSpending) SumByCategory(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	return s.totals, nil
}

func TestOverview(t *testing.T) {
	userID := uuid.New()
	svc := NewService(
		stubUsers{user: &models.User{ID: userID, SalaryCents: 500000}},
		stubSpending{totals: map[string]int64{"Needs": 40000, "Wants": 12000}},
	)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), overview.Plan.NeedsCents)
	assert.Equal(t, int64(40000), overview.Spent["Needs"])
	assert.Equal(t, int64(12000), overview.Spent["Wants"])
	// buckets with no spending are reported at zero, not omitted
	assert.Contains(t, overview.Spent, "Savings")
	assert.Equal(t, int64(0), overview.Spent["Savings"])
}

func TestOverviewUnknownUser(t *testing.T) {
	svc := NewService(stubUsers{}, stubSpending{})
	_, err := svc.Overview(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.As(err).Code())
}
