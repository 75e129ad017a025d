package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// ErrExpenseNotFound covers both a missing expense and an expense owned
// by another user; the two cases are indistinguishable to the caller.
var ErrExpenseNotFound = errors.New("expense not found or access denied")

// ExpenseReader defines read-only operations for expenses.
type ExpenseReader interface {
	GetByID(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.ExpenseDB, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error)
	ListAll(ctx context.Context) ([]models.ExpenseDB, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	Save(ctx context.Context, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (*models.ExpenseDB, error)
	Update(ctx context.Context, expenseID, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (bool, error)
	Delete(ctx context.Context, expenseID, userID uuid.UUID) (bool, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ExpenseService handles the expense ledger scoped to an owning user.
type ExpenseService struct {
	reader ExpenseReader
	writer ExpenseWriter
}

// NewExpenseService creates a new ExpenseService instance.
func NewExpenseService(reader ExpenseReader, writer ExpenseWriter) *ExpenseService {
	return &ExpenseService{reader: reader, writer: writer}
}

// Create records a new expense owned by userID. A zero expenseTime
// defaults to the current time.
func (svc *ExpenseService) Create(ctx context.Context, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (*models.ExpenseDB, error) {
	if expenseTime.IsZero() {
		expenseTime = time.Now()
	}

	expense, err := svc.writer.Save(ctx, userID, description, category, amount, expenseTime)
	if err != nil {
		logger.Log.Errorw("failed to save expense", "err", err)
		return nil, err
	}
	return expense, nil
}

// List returns the caller's expenses within the window selected by
// filter, newest first.
func (svc *ExpenseService) List(ctx context.Context, userID uuid.UUID, filter *int, startDate, endDate *time.Time) ([]models.ExpenseDB, error) {
	from, to, err := ResolveWindow(time.Now(), filter, startDate, endDate)
	if err != nil {
		return nil, err
	}

	expenses, err := svc.reader.ListByUser(ctx, userID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "err", err)
		return nil, err
	}
	return expenses, nil
}

// Get returns a single expense owned by userID.
func (svc *ExpenseService) Get(ctx context.Context, userID, expenseID uuid.UUID) (*models.ExpenseDB, error) {
	expense, err := svc.reader.GetByID(ctx, expenseID)
	if err != nil {
		logger.Log.Errorw("failed to get expense", "err", err)
		return nil, err
	}
	if expense == nil || expense.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// Update mutates an expense owned by userID. A zero expenseTime
// defaults to the current time, as in Create.
func (svc *ExpenseService) Update(ctx context.Context, userID, expenseID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) error {
	if expenseTime.IsZero() {
		expenseTime = time.Now()
	}

	ok, err := svc.writer.Update(ctx, expenseID, userID, description, category, amount, expenseTime)
	if err != nil {
		logger.Log.Errorw("failed to update expense", "err", err)
		return err
	}
	if !ok {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense owned by userID.
func (svc *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	ok, err := svc.writer.Delete(ctx, expenseID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete expense", "err", err)
		return err
	}
	if !ok {
		return ErrExpenseNotFound
	}
	return nil
}

// DeleteAll removes every expense owned by userID.
func (svc *ExpenseService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if _, err := svc.writer.DeleteAllByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete expenses", "err", err)
		return err
	}
	return nil
}
