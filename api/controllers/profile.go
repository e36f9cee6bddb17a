package controllers

import (
	"net/http"

	"github.com/marwandev/formalflow-backend/api/responses"
	"github.com/marwandev/formalflow-backend/api/validators"
	"github.com/marwandev/formalflow-backend/internal/users"
	pkgerrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

type profileUpdateRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone" validate:"omitempty,numeric,min=10,max=15"`
	BalanceCents *int64  `json:"balance_cents" validate:"omitempty,gte=0"`
	SalaryCents  *int64  `json:"salary_cents" validate:"omitempty,gte=0"`
}

// ProfileGet returns the caller's account profile.
func ProfileGet(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found"))
			return
		}

		responses.WriteSuccess(w, users.ToProfile(*user))
	}
}

// ProfileUpdate applies a partial update to the caller's profile.
func ProfileUpdate(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profileUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto := users.UpdateProfileDTO{
			BalanceCents: body.BalanceCents,
			SalaryCents:  body.SalaryCents,
		}
		if body.Name != nil {
			trimmed := validators.SanitizeString(*body.Name, 120)
			if trimmed == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank"))
				return
			}
			dto.Name = &trimmed
		}
		if body.Phone != nil {
			trimmed := validators.SanitizeString(*body.Phone, 20)
			dto.Phone = &trimmed
		}

		user, err := repo.UpdateProfile(r.Context(), userID, dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile"))
			return
		}

		responses.WriteSuccess(w, users.ToProfile(*user))
	}
}
