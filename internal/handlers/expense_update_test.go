package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestUpdateExpenseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExpenseUpdater(ctrl)

	userID := uuid.New()
	expenseID := uuid.New()
	when := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	validBody := func() []byte {
		body, _ := json.Marshal(UpdateExpenseRequest{
			Description: "dinner",
			Category:    "Food",
			Amount:      models.Money(3000),
			ExpenseTime: when,
		})
		return body
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, expenseID, "dinner", models.CategoryFood, models.Money(3000), when).
			Return(nil)

		req := authedRequest(http.MethodPut, "/expenses/"+expenseID.String(), bytes.NewReader(validBody()), userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UpdateExpenseResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Expense updated successfully", resp.Message)
	})

	t.Run("omitted expense time forwards zero time", func(t *testing.T) {
		body := []byte(`{"description":"dinner","category":"Food","amount":"30.00"}`)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, expenseID, "dinner", models.CategoryFood, models.Money(3000), time.Time{}).
			Return(nil)

		req := authedRequest(http.MethodPut, "/expenses/"+expenseID.String(), bytes.NewReader(body), userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found or foreign", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, expenseID, "dinner", models.CategoryFood, models.Money(3000), when).
			Return(services.ErrExpenseNotFound)

		req := authedRequest(http.MethodPut, "/expenses/"+expenseID.String(), bytes.NewReader(validBody()), userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		body := []byte(`{"description":"dinner","category":"Restaurants","amount":"30.00"}`)

		req := authedRequest(http.MethodPut, "/expenses/"+expenseID.String(), bytes.NewReader(body), userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := authedRequest(http.MethodPut, "/expenses/oops", bytes.NewReader(validBody()), userID)
		req = withChiParam(req, "id", "oops")
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := authedRequest(http.MethodPut, "/expenses/"+expenseID.String(), bytes.NewReader([]byte("{oops")), userID)
		req = withChiParam(req, "id", expenseID.String())
		w := httptest.NewRecorder()

		NewUpdateExpenseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
