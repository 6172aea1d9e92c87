package services

import (
	"context"
	"net/http"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSignup_CreatesEmployee(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, new(mockJWT), zap.NewNop())
	ctx := context.Background()

	users.On("EmailExists", ctx, "ann@example.com").Return(false, nil)
	users.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "ann@example.com" && u.Role == "employee" &&
			utils.ComparePasswords(u.PasswordHash, "secret1") == nil
	})).Return(uint64(5), nil)

	user, err := svc.Signup(ctx, dto.SignupDTO{Email: " Ann@Example.com ", Name: "Ann", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, uint64(5), user.ID)
	assert.Equal(t, "employee", user.Role)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, new(mockJWT), zap.NewNop())
	users.On("EmailExists", mock.Anything, "ann@example.com").Return(true, nil)

	_, err := svc.Signup(context.Background(), dto.SignupDTO{Email: "ann@example.com", Name: "Ann", Password: "secret1"})

	requireHTTPCode(t, err, http.StatusBadRequest)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	stored := &entities.User{ID: 2, Email: "tech@example.com", Name: "Tech", Role: "technician", PasswordHash: hash}

	tests := []struct {
		name     string
		payload  dto.LoginDTO
		found    bool
		wantCode int
	}{
		{"ok", dto.LoginDTO{Email: stored.Email, Password: "secret1", Role: "technician"}, true, 0},
		{"unknown user", dto.LoginDTO{Email: stored.Email, Password: "secret1", Role: "technician"}, false, http.StatusUnauthorized},
		{"wrong password", dto.LoginDTO{Email: stored.Email, Password: "nope", Role: "technician"}, true, http.StatusUnauthorized},
		{"role mismatch", dto.LoginDTO{Email: stored.Email, Password: "secret1", Role: "admin"}, true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			jwt := new(mockJWT)
			svc := NewAuthService(users, jwt, zap.NewNop())

			if tt.found {
				users.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
			} else {
				users.On("FindByEmail", mock.Anything, stored.Email).Return(nil, apperrors.ErrNotFound)
			}
			jwt.On("GenerateTokens", uint64(2), "technician").Return("access", "refresh", nil)

			resp, err := svc.Login(context.Background(), tt.payload)

			if tt.wantCode != 0 {
				requireHTTPCode(t, err, tt.wantCode)
				jwt.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", resp.AccessToken)
			assert.Equal(t, "refresh", resp.RefreshToken)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, uint64(2), resp.User.ID)
		})
	}
}

func TestMe(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, new(mockJWT), zap.NewNop())

	_, err := svc.Me(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	ctx := ctxWithUser(3, "manager")
	users.On("FindByID", ctx, uint64(3)).Return(&entities.User{ID: 3, Name: "Mia", Role: "manager"}, nil)
	user, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mia", user.Name)
}
