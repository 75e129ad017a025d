package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID             uuid.UUID  `json:"id" db:"user_id"`                 // Primary key
	Username           string     `json:"username" db:"username"`          // Unique username
	PasswordHash       string     `json:"-" db:"password_hash"`            // Bcrypt hash, never serialized
	Role               Role       `json:"role" db:"role"`                  // User or Admin
	RefreshToken       *string    `json:"-" db:"refresh_token"`            // Current refresh token, nil before first login
	RefreshTokenExpiry *time.Time `json:"-" db:"refresh_token_expires_at"` // Refresh token expiry
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`      // Last update timestamp
}
