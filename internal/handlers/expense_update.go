package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// ExpenseUpdater defines the interface that the service must implement.
type ExpenseUpdater interface {
	Update(ctx context.Context, userID, expenseID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) error
}

// UpdateExpenseRequest represents the JSON body for expense update
// swagger:model UpdateExpenseRequest
type UpdateExpenseRequest struct {
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Amount      models.Money `json:"amount"`
	ExpenseTime time.Time    `json:"expense_time"`
}

// UpdateExpenseResponse represents a successful update response
// swagger:model UpdateExpenseResponse
type UpdateExpenseResponse struct {
	// Success message
	// default: Expense updated successfully
	Message string `json:"message"`
}

// NewUpdateExpenseHandler returns an HTTP handler for expense update.
// @Summary Update an expense
// @Description Mutates an expense owned by the caller.
// @Tags expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param updateExpenseRequest body handlers.UpdateExpenseRequest true "Update expense request"
// @Success 200 {object} handlers.UpdateExpenseResponse "Expense updated"
// @Failure 400 {object} handlers.ErrorResponse "Unknown category or invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found or access denied"
// @Router /expenses/{id} [put]
func NewUpdateExpenseHandler(svc ExpenseUpdater) http.HandlerFunc {
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

		var req UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		category, err := models.ParseCategory(req.Category)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Update(r.Context(), userID, expenseID, req.Description, category, req.Amount, req.ExpenseTime); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateExpenseResponse{
			Message: "Expense updated successfully",
		})
	}
}
