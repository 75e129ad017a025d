package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestAdminService_Users(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockUserW := services.NewMockUserWriter(ctrl)
	mockExpenses := services.NewMockExpenseReader(ctrl)

	svc := services.NewAdminService(mockUsers, mockUserW, mockExpenses)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Role: models.RoleUser}

	t.Run("list users", func(t *testing.T) {
		mockUsers.EXPECT().
			List(gomock.Any()).
			Return([]models.UserDB{*user}, nil)

		got, err := svc.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("get user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)

		got, err := svc.GetUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("get missing user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		got, err := svc.GetUser(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("delete user", func(t *testing.T) {
		mockUserW.EXPECT().
			Delete(gomock.Any(), userID).
			Return(true, nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), userID))
	})

	t.Run("delete missing user", func(t *testing.T) {
		mockUserW.EXPECT().
			Delete(gomock.Any(), userID).
			Return(false, nil)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), userID), services.ErrUserNotFound)
	})

	t.Run("promote user", func(t *testing.T) {
		promoted := &models.UserDB{UserID: userID, Username: "alice", Role: models.RoleAdmin}
		mockUserW.EXPECT().
			SetRole(gomock.Any(), userID, models.RoleAdmin).
			Return(promoted, nil)

		got, err := svc.PromoteUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, got.Role)
	})

	t.Run("promote missing user", func(t *testing.T) {
		mockUserW.EXPECT().
			SetRole(gomock.Any(), userID, models.RoleAdmin).
			Return(nil, nil)

		got, err := svc.PromoteUser(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestAdminService_UserExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockUserW := services.NewMockUserWriter(ctrl)
	mockExpenses := services.NewMockExpenseReader(ctrl)

	svc := services.NewAdminService(mockUsers, mockUserW, mockExpenses)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}
	expenses := []models.ExpenseDB{{ExpenseID: uuid.New(), UserID: userID}}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)
		mockExpenses.EXPECT().
			ListAllByUser(gomock.Any(), userID).
			Return(expenses, nil)

		got, err := svc.UserExpenses(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, expenses, got)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		got, err := svc.UserExpenses(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestAdminService_GlobalSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockUserW := services.NewMockUserWriter(ctrl)
	mockExpenses := services.NewMockExpenseReader(ctrl)

	svc := services.NewAdminService(mockUsers, mockUserW, mockExpenses)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().
			Count(gomock.Any()).
			Return(5, nil)
		mockExpenses.EXPECT().
			ListAll(gomock.Any()).
			Return([]models.ExpenseDB{
				expenseAt(models.CategoryFood, 30, jan),
				expenseAt(models.CategoryTransport, 20, jan),
				expenseAt(models.CategoryHealth, 10, jan),
			}, nil)

		got, err := svc.GlobalSummary(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 5, got.TotalUsers)
		assert.Equal(t, 3, got.TotalExpenses)
		assert.Equal(t, models.Money(60), got.TotalAmountSpent)
		// Only the top two categories are reported.
		assert.Equal(t, []models.CategoryTotal{
			{Category: models.CategoryFood, TotalAmount: 30, Count: 1},
			{Category: models.CategoryTransport, TotalAmount: 20, Count: 1},
		}, got.TopCategories)
	})

	t.Run("count error", func(t *testing.T) {
		mockUsers.EXPECT().
			Count(gomock.Any()).
			Return(0, errors.New("db error"))

		got, err := svc.GlobalSummary(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestAdminService_UserSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockUserW := services.NewMockUserWriter(ctrl)
	mockExpenses := services.NewMockExpenseReader(ctrl)

	svc := services.NewAdminService(mockUsers, mockUserW, mockExpenses)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)
		mockExpenses.EXPECT().
			ListAllByUser(gomock.Any(), userID).
			Return([]models.ExpenseDB{
				expenseAt(models.CategoryFood, 10, jan),
				expenseAt(models.CategoryFood, 20, jan),
				expenseAt(models.CategoryTransport, 5, jan),
			}, nil)

		got, err := svc.UserSummary(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, 3, got.TotalExpenses)
		assert.Equal(t, models.Money(35), got.TotalAmountSpent)
		assert.Equal(t, []models.CategoryTotal{
			{Category: models.CategoryFood, TotalAmount: 30, Count: 2},
			{Category: models.CategoryTransport, TotalAmount: 5, Count: 1},
		}, got.TopCategories)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		got, err := svc.UserSummary(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
