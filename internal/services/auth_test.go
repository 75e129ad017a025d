package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func()
		wantErr   error
		wantToken string
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(nil, nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, username, passwordHash string) (*models.UserDB, error) {
						// The stored hash must verify against the original password.
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("pass123")))
						return &models.UserDB{UserID: userID, Username: username, PasswordHash: passwordHash, Role: models.RoleUser}, nil
					})
				mockTokens.EXPECT().
					Generate(gomock.Any(), userID, "alice", models.RoleUser).
					Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:      "missing username",
			username:  "",
			password:  "pass123",
			mockSetup: func() {},
			wantErr:   services.ErrMissingCredentials,
		},
		{
			name:      "missing password",
			username:  "alice",
			password:  "",
			mockSetup: func() {},
			wantErr:   services.ErrMissingCredentials,
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "bob").
					Return(&models.UserDB{UserID: uuid.New(), Username: "bob"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "eve").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "writer error",
			username: "carol",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "carol").
					Return(nil, nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), "carol", gomock.Any()).
					Return(nil, errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, token, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, models.RoleUser, user.Role)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed), Role: models.RoleUser}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(stored, nil)
				mockTokens.EXPECT().
					GenerateRefreshToken(gomock.Any()).
					Return("REFRESH", nil)
				mockWriter.EXPECT().
					SetRefreshToken(gomock.Any(), userID, "REFRESH", gomock.Any()).
					Return(nil)
				mockTokens.EXPECT().
					Generate(gomock.Any(), userID, "alice", models.RoleUser).
					Return("ACCESS", nil)
			},
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "ghost").
					Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(stored, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "corrupted stored hash",
			username: "alice",
			password: password,
			mockSetup: func() {
				flipped := "x"
				if stored.PasswordHash[len(stored.PasswordHash)-1] == 'x' {
					flipped = "y"
				}
				corrupted := *stored
				corrupted.PasswordHash = stored.PasswordHash[:len(stored.PasswordHash)-1] + flipped
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(&corrupted, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			username: "alice",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "store refresh token error",
			username: "alice",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(stored, nil)
				mockTokens.EXPECT().
					GenerateRefreshToken(gomock.Any()).
					Return("REFRESH", nil)
				mockWriter.EXPECT().
					SetRefreshToken(gomock.Any(), userID, "REFRESH", gomock.Any()).
					Return(errors.New("write error"))
			},
			wantErr: errors.New("write error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, access, refresh, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, user)
				assert.Equal(t, "ACCESS", access)
				assert.Equal(t, "REFRESH", refresh)
			}
		})
	}
}

func TestAuthService_LoginFailureIsUniform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "ghost").
		Return(nil, nil)
	_, _, _, errUnknown := svc.Login(context.Background(), "ghost", "whatever")

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: string(hashed)}, nil)
	_, _, _, errWrongPass := svc.Login(context.Background(), "alice", "wrong")

	// An attacker must not be able to tell the two failures apart.
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name      string
		token     string
		mockSetup func()
		wantErr   error
	}{
		{
			name:  "successful rotation",
			token: "OLD",
			mockSetup: func() {
				mockTokens.EXPECT().
					GenerateRefreshToken(gomock.Any()).
					Return("NEW", nil)
				mockWriter.EXPECT().
					RotateRefreshToken(gomock.Any(), "OLD", "NEW", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, expiresAt time.Time) (*models.UserDB, error) {
						assert.True(t, expiresAt.After(time.Now()))
						return user, nil
					})
				mockTokens.EXPECT().
					Generate(gomock.Any(), userID, "alice", models.RoleUser).
					Return("ACCESS", nil)
			},
		},
		{
			name:      "empty token",
			token:     "",
			mockSetup: func() {},
			wantErr:   services.ErrInvalidRefreshToken,
		},
		{
			name:  "stale or unknown token",
			token: "STALE",
			mockSetup: func() {
				mockTokens.EXPECT().
					GenerateRefreshToken(gomock.Any()).
					Return("NEW", nil)
				mockWriter.EXPECT().
					RotateRefreshToken(gomock.Any(), "STALE", "NEW", gomock.Any()).
					Return(nil, nil)
			},
			wantErr: services.ErrInvalidRefreshToken,
		},
		{
			name:  "rotation error",
			token: "OLD",
			mockSetup: func() {
				mockTokens.EXPECT().
					GenerateRefreshToken(gomock.Any()).
					Return("NEW", nil)
				mockWriter.EXPECT().
					RotateRefreshToken(gomock.Any(), "OLD", "NEW", gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			access, refresh, err := svc.Refresh(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ACCESS", access)
				assert.Equal(t, "NEW", refresh)
			}
		})
	}
}
