package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwandev/formalflow-backend/pkg/db/models"
)

// CreateUserDTO carries the fields needed to register an account. The
// password is already hashed by the time it reaches the repository.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	BalanceCents int64
	SalaryCents  int64
}

// ToModel converts the DTO into a fresh user model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Phone:        d.Phone,
		BalanceCents: d.BalanceCents,
		SalaryCents:  d.SalaryCents,
	}
}

// UpdateProfileDTO carries optional profile edits. Nil fields are left
// untouched.
type UpdateProfileDTO struct {
	Name         *string
	Phone        *string
	BalanceCents *int64
	SalaryCents  *int64
}

func (d UpdateProfileDTO) toColumnMap() map[string]any {
	updates := map[string]any{}
	if d.Name != nil {
		updates["name"] = *d.Name
	}
	if d.Phone != nil {
		updates["phone"] = *d.Phone
	}
	if d.BalanceCents != nil {
		updates["balance_cents"] = *d.BalanceCents
	}
	if d.SalaryCents != nil {
		updates["salary_cents"] = *d.SalaryCents
	}
	return updates
}

// Profile is the API shape of an account.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	BalanceCents int64     `json:"balance_cents"`
	SalaryCents  int64     `json:"salary_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToProfile maps a persisted user onto its API shape.
func ToProfile(user models.User) Profile {
	return Profile{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		BalanceCents: user.BalanceCents,
		SalaryCents:  user.SalaryCents,
		CreatedAt:    user.CreatedAt,
	}
}
