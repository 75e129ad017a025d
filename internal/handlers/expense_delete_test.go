package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestDeleteExpenseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExpenseDeleter(ctrl)

	userID := uuid.New()
	expenseID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, expenseID).
			Return(nil)

		req := authedRequest(http.MethodDelete, "/expenses/"+expenseID.String(), nil, userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewDeleteExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DeleteExpenseResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Expense deleted successfully", resp.Message)
	})

	t.Run("not found or foreign", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, expenseID).
			Return(services.ErrExpenseNotFound)

		req := authedRequest(http.MethodDelete, "/expenses/"+expenseID.String(), nil, userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewDeleteExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := authedRequest(http.MethodDelete, "/expenses/oops", nil, userID)
		req = withChiParam(req, "id", "oops")
		w := httptest.NewRecorder()

		NewDeleteExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/expenses/"+expenseID.String(), nil)
		w := httptest.NewRecorder()

		NewDeleteExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteAllExpensesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExpenseDeleter(ctrl)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			DeleteAll(gomock.Any(), userID).
			Return(nil)

		req := authedRequest(http.MethodDelete, "/expenses/delete-all", nil, userID)
		w := httptest.NewRecorder()

		NewDeleteAllExpensesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DeleteExpenseResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "All expenses deleted successfully", resp.Message)
	})

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/expenses/delete-all", nil)
		w := httptest.NewRecorder()

		NewDeleteAllExpensesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
