package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// AdminSummarizer defines the interface that the admin service must
// implement for statistics.
type AdminSummarizer interface {
	GlobalSummary(ctx context.Context) (*models.GlobalSummary, error)
	UserSummary(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error)
}

// NewAdminGlobalSummaryHandler returns an HTTP handler for cross-user
// statistics.
// @Summary Global summary
// @Description Returns user count, expense count, total amount spent and the top two categories by total.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.GlobalSummary "Summary returned"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Router /admin/summary [get]
func NewAdminGlobalSummaryHandler(svc AdminSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.GlobalSummary(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewAdminUserSummaryHandler returns an HTTP handler for one user's
// statistics.
// @Summary Per-user summary
// @Description Returns a user's expense count, total amount spent and top two categories by total.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserSummary "Summary returned"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/summary/user/{id} [get]
func NewAdminUserSummaryHandler(svc AdminSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrUserNotFound)
			return
		}

		summary, err := svc.UserSummary(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
