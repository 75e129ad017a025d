package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestRefreshTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RefreshRequest{
				RefreshToken: "OLD_REFRESH",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "OLD_REFRESH").
					Return("NEW_ACCESS", "NEW_REFRESH", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &RefreshResponse{
				Token:        "NEW_ACCESS",
				RefreshToken: "NEW_REFRESH",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name: "stale token",
			inputBody: RefreshRequest{
				RefreshToken: "STALE",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "STALE").
					Return("", "", services.ErrInvalidRefreshToken)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: services.ErrInvalidRefreshToken.Error(),
			},
		},
		{
			name: "internal error",
			inputBody: RefreshRequest{
				RefreshToken: "OLD_REFRESH",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "OLD_REFRESH").
					Return("", "", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/refresh-token", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRefreshTokenHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &RefreshResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
