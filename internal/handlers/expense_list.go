package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// ExpenseLister defines the interface that the service must implement.
type ExpenseLister interface {
	List(ctx context.Context, userID uuid.UUID, filter *int, startDate, endDate *time.Time) ([]models.ExpenseDB, error)
}

// NewListExpensesHandler returns an HTTP handler for listing the
// caller's expenses with an optional time-window filter.
// @Summary List expenses
// @Description Lists the caller's expenses, newest first. filter: 0=past week, 1=past month, 2=past 3 months, 3=custom (startDate and endDate required, RFC 3339). Any other value means all time.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Param filter query int false "Time-window selector"
// @Param startDate query string false "Custom window start (RFC 3339)"
// @Param endDate query string false "Custom window end (RFC 3339)"
// @Success 200 {array} models.ExpenseDB "Expenses returned"
// @Failure 400 {object} handlers.ErrorResponse "Malformed custom window"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /expenses/getExpenses [get]
func NewListExpensesHandler(svc ExpenseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var filter *int
		if s := r.URL.Query().Get("filter"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "filter must be an integer"})
				return
			}
			filter = &v
		}

		startDate, err := parseTimeParam(r, "startDate")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "startDate must be RFC 3339"})
			return
		}
		endDate, err := parseTimeParam(r, "endDate")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "endDate must be RFC 3339"})
			return
		}

		expenses, err := svc.List(r.Context(), userID, filter, startDate, endDate)
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

// parseTimeParam reads an optional RFC 3339 query parameter.
func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
