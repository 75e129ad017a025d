package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// RefreshRequest represents the JSON body for token rotation
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token obtained from login or a previous rotation
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse represents a successful rotation response
// swagger:model RefreshResponse
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// NewRefreshTokenHandler returns an HTTP handler for refresh-token rotation.
// @Summary Rotate tokens
// @Description Exchanges a valid refresh token for a new access token and a new refresh token. The old refresh token is invalidated atomically; reuse fails.
// @Tags users
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.RefreshResponse "New tokens returned"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired refresh token"
// @Router /users/refresh-token [post]
func NewRefreshTokenHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		accessToken, refreshToken, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{
			Token:        accessToken,
			RefreshToken: refreshToken,
		})
	}
}
