package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// ExpenseCreator defines the interface that the service must implement.
type ExpenseCreator interface {
	Create(ctx context.Context, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (*models.ExpenseDB, error)
}

// NewExpenseRequest represents the JSON body for expense creation
// swagger:model NewExpenseRequest
type NewExpenseRequest struct {
	// Free-text description
	Description string `json:"description"`

	// Category name from the closed set
	// required: true
	// default: Others
	Category string `json:"category"`

	// Amount as a decimal string, e.g. "12.34"
	// required: true
	Amount models.Money `json:"amount"`

	// When the expense occurred; defaults to now
	ExpenseTime *time.Time `json:"expense_time"`
}

// NewExpenseResponse represents a successful creation response
// swagger:model NewExpenseResponse
type NewExpenseResponse struct {
	// Success message
	// default: Expense added successfully
	Message string           `json:"message"`
	Expense models.ExpenseDB `json:"expense"`
}

// NewCreateExpenseHandler returns an HTTP handler for expense creation.
// @Summary Create an expense
// @Description Records a new expense owned by the caller.
// @Tags expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param newExpenseRequest body handlers.NewExpenseRequest true "New expense request"
// @Success 201 {object} handlers.NewExpenseResponse "Expense created"
// @Failure 400 {object} handlers.ErrorResponse "Unknown category or invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /expenses/newExpense [post]
func NewCreateExpenseHandler(svc ExpenseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req NewExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		category, err := models.ParseCategory(req.Category)
		if err != nil {
			writeError(w, err)
			return
		}

		var expenseTime time.Time
		if req.ExpenseTime != nil {
			expenseTime = *req.ExpenseTime
		}

		expense, err := svc.Create(r.Context(), userID, req.Description, category, req.Amount, expenseTime)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NewExpenseResponse{
			Message: "Expense added successfully",
			Expense: *expense,
		})
	}
}
