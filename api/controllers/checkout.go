package controllers

import (
	"net/http"

	"github.com/marwandev/formalflow-backend/api/responses"
	"github.com/marwandev/formalflow-backend/api/validators"
	"github.com/marwandev/formalflow-backend/internal/checkout"
	"github.com/marwandev/formalflow-backend/internal/orders"
	pkgerrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

type checkoutRequest struct {
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	DeliveryDate    string `json:"delivery_date" validate:"required"`
}

// CheckoutDates lists the delivery dates currently offered at checkout.
func CheckoutDates(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"delivery_dates": svc.Dates(r.Context())})
	}
}

// CheckoutSubmit turns the caller's cart into an order.
func CheckoutSubmit(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := requireUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), userID, checkout.Draft{
			Email:           body.Email,
			Phone:           body.Phone,
			DeliveryAddress: body.DeliveryAddress,
			DeliveryDate:    body.DeliveryDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, orders.ToResponse(*order))
	}
}
