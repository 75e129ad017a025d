package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// AdminExpenseLister defines the interface that the admin service must
// implement for cross-user expense inspection.
type AdminExpenseLister interface {
	UserExpenses(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error)
}

// NewAdminListExpensesHandler returns an HTTP handler that lists a given
// user's expenses.
// @Summary List a user's expenses
// @Description Returns all expenses of the user named by the userId query parameter.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} models.ExpenseDB "Expenses returned"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/expenses [get]
func NewAdminListExpensesHandler(svc AdminExpenseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("userId"))
		if err != nil {
			writeError(w, services.ErrUserNotFound)
			return
		}

		expenses, err := svc.UserExpenses(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if expenses == nil {
			expenses = []models.ExpenseDB{}
		}

		writeJSON(w, http.StatusOK, expenses)
	}
}
