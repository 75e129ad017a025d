package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// ExpenseGetter defines the interface that the service must implement.
type ExpenseGetter interface {
	Get(ctx context.Context, userID, expenseID uuid.UUID) (*models.ExpenseDB, error)
}

// NewGetExpenseHandler returns an HTTP handler for fetching one expense.
// @Summary Get an expense
// @Description Returns a single expense owned by the caller. A missing expense and one owned by another user are indistinguishable.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} models.ExpenseDB "Expense returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found or access denied"
// @Router /expenses/{id} [get]
func NewGetExpenseHandler(svc ExpenseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		expenseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrExpenseNotFound)
			return
		}

		expense, err := svc.Get(r.Context(), userID, expenseID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}
