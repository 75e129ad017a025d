package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/models"
)

const expenseColumns = `expense_id, user_id, description, category, amount_cents, expense_time, created_at`

// ExpenseReadRepository handles expense read operations
type ExpenseReadRepository struct {
	db *sqlx.DB
}

func NewExpenseReadRepository(db *sqlx.DB) *ExpenseReadRepository {
	return &ExpenseReadRepository{db: db}
}

// GetByID returns a single expense, or nil when it does not exist.
func (r *ExpenseReadRepository) GetByID(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1`

	var expense models.ExpenseDB
	err := r.db.GetContext(ctx, &expense, query, expenseID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{expenseID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByUser returns the user's expenses whose expense_time falls within
// [from, to], newest first.
func (r *ExpenseReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.ExpenseDB, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND expense_time >= $2 AND expense_time <= $3
		ORDER BY expense_time DESC
	`

	var expenses []models.ExpenseDB
	err := r.db.SelectContext(ctx, &expenses, query, userID, from, to)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(expenses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListAll returns every expense in the store, newest first.
func (r *ExpenseReadRepository) ListAll(ctx context.Context) ([]models.ExpenseDB, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_time DESC`

	var expenses []models.ExpenseDB
	err := r.db.SelectContext(ctx, &expenses, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", len(expenses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListAllByUser returns every expense of one user with no time bound,
// newest first.
func (r *ExpenseReadRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY expense_time DESC`

	var expenses []models.ExpenseDB
	err := r.db.SelectContext(ctx, &expenses, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(expenses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ExpenseWriteRepository handles expense write operations
type ExpenseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExpenseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExpenseWriteRepository {
	return &ExpenseWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExpenseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new expense and returns the created row.
func (r *ExpenseWriteRepository) Save(ctx context.Context, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (*models.ExpenseDB, error) {
	query := `
		INSERT INTO expenses (expense_id, user_id, description, category, amount_cents, expense_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + expenseColumns
	args := []any{uuid.New(), userID, description, category, amount, expenseTime}

	var expense models.ExpenseDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &expense, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category, amount},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update mutates an expense owned by userID. The ownership check is part
// of the WHERE clause so check and mutation are a single statement.
// Returns false when the expense does not exist or belongs to another user.
func (r *ExpenseWriteRepository) Update(ctx context.Context, expenseID, userID uuid.UUID, description string, category models.Category, amount models.Money, expenseTime time.Time) (bool, error) {
	query := `
		UPDATE expenses
		SET description = $3, category = $4, amount_cents = $5, expense_time = $6
		WHERE expense_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, expenseID, userID, description, category, amount, expenseTime)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{expenseID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes an expense owned by userID. Returns false when the
// expense does not exist or belongs to another user.
func (r *ExpenseWriteRepository) Delete(ctx context.Context, expenseID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, expenseID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{expenseID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteAllByUser removes every expense owned by userID.
func (r *ExpenseWriteRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM expenses WHERE user_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
