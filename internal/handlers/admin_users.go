package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

// AdminUserManager defines the interface that the admin service must
// implement for user management.
type AdminUserManager interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	PromoteUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AdminUserResponse represents a user-mutation response
// swagger:model AdminUserResponse
type AdminUserResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// NewAdminListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all registered users.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} handlers.UserInfo "Users returned"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Router /admin/users [get]
func NewAdminListUsersHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		infos := make([]UserInfo, 0, len(users))
		for i := range users {
			infos = append(infos, userInfo(&users[i]))
		}

		writeJSON(w, http.StatusOK, infos)
	}
}

// NewAdminGetUserHandler returns an HTTP handler that fetches one user.
// @Summary Get a user
// @Description Returns a single user by id.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserInfo "User returned"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id} [get]
func NewAdminGetUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrUserNotFound)
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, userInfo(user))
	}
}

// NewAdminDeleteUserHandler returns an HTTP handler that deletes a user
// and, through the cascade, all of their expenses.
// @Summary Delete a user
// @Description Removes a user; their expenses are deleted with them.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.DeleteExpenseResponse "User deleted"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func NewAdminDeleteUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrUserNotFound)
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteExpenseResponse{
			Message: "User deleted successfully",
		})
	}
}

// NewAdminPromoteUserHandler returns an HTTP handler that grants a user
// the Admin role.
// @Summary Promote a user
// @Description Grants the Admin role to a user.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.AdminUserResponse "User promoted"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id} [put]
func NewAdminPromoteUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrUserNotFound)
			return
		}

		user, err := svc.PromoteUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AdminUserResponse{
			Message: "User promoted to Admin",
			User:    userInfo(user),
		})
	}
}
