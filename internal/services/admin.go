package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// ErrUserNotFound is returned when a user id does not resolve.
var ErrUserNotFound = errors.New("user not found")

// topCategoryCount is the truncation applied to summary views.
const topCategoryCount = 2

// AdminService handles cross-user administration and global statistics.
type AdminService struct {
	users    UserReader
	userW    UserWriter
	expenses ExpenseReader
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(users UserReader, userW UserWriter, expenses ExpenseReader) *AdminService {
	return &AdminService{users: users, userW: userW, expenses: expenses}
}

// ListUsers returns all users.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user by id.
func (svc *AdminService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes a user; their expenses cascade with the row.
func (svc *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	ok, err := svc.userW.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// PromoteUser grants a user the Admin role.
func (svc *AdminService) PromoteUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.userW.SetRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to promote user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UserExpenses returns all expenses of the given user.
func (svc *AdminService) UserExpenses(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	expenses, err := svc.expenses.ListAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user expenses", "err", err)
		return nil, err
	}
	return expenses, nil
}

// GlobalSummary aggregates spending across all users with the top two
// categories by total.
func (svc *AdminService) GlobalSummary(ctx context.Context) (*models.GlobalSummary, error) {
	totalUsers, err := svc.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}

	expenses, err := svc.expenses.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "err", err)
		return nil, err
	}

	var totalAmount models.Money
	for _, e := range expenses {
		totalAmount += e.Amount
	}

	return &models.GlobalSummary{
		TotalUsers:       totalUsers,
		TotalExpenses:    len(expenses),
		TotalAmountSpent: totalAmount,
		TopCategories:    TopCategories(Summarize(expenses), topCategoryCount),
	}, nil
}

// UserSummary aggregates one user's spending with the top two categories
// by total.
func (svc *AdminService) UserSummary(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	expenses, err := svc.expenses.ListAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user expenses", "err", err)
		return nil, err
	}

	var totalAmount models.Money
	for _, e := range expenses {
		totalAmount += e.Amount
	}

	return &models.UserSummary{
		Username:         user.Username,
		TotalExpenses:    len(expenses),
		TotalAmountSpent: totalAmount,
		TopCategories:    TopCategories(Summarize(expenses), topCategoryCount),
	}, nil
}
