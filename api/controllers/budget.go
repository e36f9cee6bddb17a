package controllers

import (
	"net/http"

	"github.com/marwandev/formalflow-backend/api/responses"
	"github.com/marwandev/formalflow-backend/internal/budget"
	pkgerrors "github.com/marwandev/formalflow-backend/pkg/errors"
	"github.com/marwandev/formalflow-backend/pkg/logger"
)

// BudgetOverview returns the caller's 50/30/20 plan alongside actual spending.
func BudgetOverview(svc *budget.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "budget service unavailable"))
			return
		}

		userID, err := requireUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		overview, err := svc.Overview(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}
