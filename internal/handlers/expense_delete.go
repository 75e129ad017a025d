package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// ExpenseDeleter defines the interface that the service must implement.
type ExpenseDeleter interface {
	Delete(ctx context.Context, userID, expenseID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

// DeleteExpenseResponse represents a successful deletion response
// swagger:model DeleteExpenseResponse
type DeleteExpenseResponse struct {
	// Success message
	// default: Expense deleted successfully
	Message string `json:"message"`
}

// NewDeleteExpenseHandler returns an HTTP handler for deleting one expense.
// @Summary Delete an expense
// @Description Removes an expense owned by the caller.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} handlers.DeleteExpenseResponse "Expense deleted"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found or access denied"
// @Router /expenses/{id} [delete]
func NewDeleteExpenseHandler(svc ExpenseDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, expenseID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteExpenseResponse{
			Message: "Expense deleted successfully",
		})
	}
}

// NewDeleteAllExpensesHandler returns an HTTP handler that deletes all
// of the caller's expenses.
// @Summary Delete all expenses
// @Description Removes every expense owned by the caller.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.DeleteExpenseResponse "Expenses deleted"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /expenses/delete-all [delete]
func NewDeleteAllExpensesHandler(svc ExpenseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteAll(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteExpenseResponse{
			Message: "All expenses deleted successfully",
		})
	}
}
