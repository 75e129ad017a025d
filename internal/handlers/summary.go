package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// Summarizer defines the interface that the summary service must implement.
type Summarizer interface {
	CategorySummary(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID) ([]models.MonthlyTotal, error)
}

// NewCategorySummaryHandler returns an HTTP handler for the caller's
// per-category totals.
// @Summary Per-category summary
// @Description Returns the caller's full per-category totals, largest first. Ties are broken by category declaration order.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.CategoryTotal "Summary returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /expenses/summary [get]
func NewCategorySummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		summary, err := svc.CategorySummary(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if summary == nil {
			summary = []models.CategoryTotal{}
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewMonthlySummaryHandler returns an HTTP handler for the caller's
// monthly totals.
// @Summary Monthly summary
// @Description Returns the caller's totals bucketed by calendar month, oldest first.
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MonthlyTotal "Summary returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /expenses/summary/monthly [get]
func NewMonthlySummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		summary, err := svc.MonthlySummary(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if summary == nil {
			summary = []models.MonthlyTotal{}
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
