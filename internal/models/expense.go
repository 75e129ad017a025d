package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseDB represents an expense record in the database
type ExpenseDB struct {
	ExpenseID   uuid.UUID `json:"id" db:"expense_id"`             // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owning user
	Description string    `json:"description" db:"description"`   // Free text
	Category    Category  `json:"category" db:"category"`         // Closed enumeration, stored by name
	Amount      Money     `json:"amount" db:"amount_cents"`       // Fixed-point cents
	ExpenseTime time.Time `json:"expense_time" db:"expense_time"` // When the expense occurred
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Record creation, immutable
}
