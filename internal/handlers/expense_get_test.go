package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestGetExpenseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExpenseGetter(ctrl)

	userID := uuid.New()
	expenseID := uuid.New()

	t.Run("success", func(t *testing.T) {
		expense := &models.ExpenseDB{ExpenseID: expenseID, UserID: userID, Category: models.CategoryFood, Amount: models.Money(1050)}
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, expenseID).
			Return(expense, nil)

		req := authedRequest(http.MethodGet, "/expenses/"+expenseID.String(), nil, userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewGetExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.ExpenseDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, expenseID, got.ExpenseID)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/expenses/not-a-uuid", nil, userID)
		req = withChiParam(req, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		NewGetExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not found or foreign", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, expenseID).
			Return(nil, services.ErrExpenseNotFound)

		req := authedRequest(http.MethodGet, "/expenses/"+expenseID.String(), nil, userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewGetExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, expenseID).
			Return(nil, errors.New("database error"))

		req := authedRequest(http.MethodGet, "/expenses/"+expenseID.String(), nil, userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewGetExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/expenses/"+expenseID.String(), nil)
		w := httptest.NewRecorder()

		NewGetExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
