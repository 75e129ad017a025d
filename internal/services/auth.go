package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// Error variables
var (
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrUserAlreadyExists   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// refreshTokenTTL bounds session lifetime; there is no explicit logout.
const refreshTokenTTL = 3 * time.Hour

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Count(ctx context.Context) (int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	RotateRefreshToken(ctx context.Context, oldToken, newToken string, expiresAt time.Time) (*models.UserDB, error)
	SetRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenIssuer defines an interface for issuing access and refresh tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, username string, role models.Role) (string, error)
	GenerateRefreshToken(ctx context.Context) (string, error)
}

// AuthService handles registration, login and refresh-token rotation.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user with the User role and returns the created
// user together with a signed access token.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and, on success, issues an access token and
// a fresh refresh token. The refresh token overwrites any prior one, so
// at most one session chain is valid per user. A missing user and a wrong
// password both map to ErrInvalidCredentials so callers cannot probe for
// usernames.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, "", "", ErrInvalidCredentials
	}

	refreshToken, err := svc.tokens.GenerateRefreshToken(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, "", "", err
	}

	if err := svc.writer.SetRefreshToken(ctx, user.UserID, refreshToken, time.Now().Add(refreshTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return nil, "", "", err
	}

	accessToken, err := svc.tokens.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh exchanges a refresh token for a new access token and a new
// refresh token. Rotation is single-use: the stored token is replaced in
// the same statement that matches it, so a stale token can never be
// exchanged twice. On failure nothing is mutated.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidRefreshToken
	}

	newRefreshToken, err := svc.tokens.GenerateRefreshToken(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	user, err := svc.writer.RotateRefreshToken(ctx, refreshToken, newRefreshToken, time.Now().Add(refreshTokenTTL))
	if err != nil {
		logger.Log.Errorw("failed to rotate refresh token", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("refresh token mismatch or expired")
		return "", "", ErrInvalidRefreshToken
	}

	accessToken, err := svc.tokens.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	return accessToken, newRefreshToken, nil
}
