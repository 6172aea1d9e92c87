package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestAuthController_LoginSetsCookies(t *testing.T) {
	authSvc := new(mockAuthService)
	jwtSvc := new(mockJWT)
	ctrl := NewAuthController(authSvc, jwtSvc, false, zap.NewNop())

	authSvc.On("Login", mock.Anything, mock.MatchedBy(func(p dto.LoginDTO) bool {
		return p.Email == "tech@gearguard.io" && p.Role == constants.RoleTechnician
	})).Return(&dto.AuthResponseDTO{AccessToken: "acc", RefreshToken: "ref", TokenType: "bearer"}, nil)

	c, rec := newCtx(newEcho(), http.MethodPost, "/auth/login",
		`{"email":"tech@gearguard.io","password":"secret","role":"technician"}`)
	require.NoError(t, ctrl.Login(c))
	requireStatus(t, rec, http.StatusOK)

	access := cookieByName(rec, constants.CookieAccessToken)
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.Contains(t, access.Value, "acc")
	assert.NotNil(t, cookieByName(rec, constants.CookieRefreshToken))
}

func TestAuthController_LoginFormUsername(t *testing.T) {
	authSvc := new(mockAuthService)
	ctrl := NewAuthController(authSvc, new(mockJWT), false, zap.NewNop())

	authSvc.On("Login", mock.Anything, mock.MatchedBy(func(p dto.LoginDTO) bool {
		return p.Email == "admin@gearguard.io"
	})).Return(nil, apperrors.NewHttpError(http.StatusUnauthorized, "incorrect email or password", apperrors.ErrInvalidCredentials, nil))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader("username=admin%40gearguard.io&password=bad&role=admin"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.Login(c))
	requireStatus(t, rec, http.StatusUnauthorized)
	authSvc.AssertExpectations(t)
}

func TestAuthController_RefreshFromCookie(t *testing.T) {
	jwtSvc := new(mockJWT)
	ctrl := NewAuthController(new(mockAuthService), jwtSvc, false, zap.NewNop())

	jwtSvc.On("ValidateToken", "old-refresh").
		Return(&service.JwtCustomClaim{UserID: 4, Role: "manager", IsRefreshToken: true}, nil)
	jwtSvc.On("GenerateTokens", uint64(4), "manager").Return("new-acc", "new-ref", nil)

	c, rec := newCtx(newEcho(), http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: constants.CookieRefreshToken, Value: "Bearer old-refresh"})

	require.NoError(t, ctrl.Refresh(c))
	requireStatus(t, rec, http.StatusOK)
	jwtSvc.AssertExpectations(t)
}

func TestAuthController_RefreshRejectsAccessToken(t *testing.T) {
	jwtSvc := new(mockJWT)
	ctrl := NewAuthController(new(mockAuthService), jwtSvc, false, zap.NewNop())

	jwtSvc.On("ValidateToken", "acc").Return(&service.JwtCustomClaim{UserID: 4, Role: "manager"}, nil)

	c, rec := newCtx(newEcho(), http.MethodPost, "/auth/refresh", `{"refresh_token":"acc"}`)
	require.NoError(t, ctrl.Refresh(c))
	requireStatus(t, rec, http.StatusUnauthorized)
	jwtSvc.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestAuthController_LogoutClearsCookies(t *testing.T) {
	ctrl := NewAuthController(new(mockAuthService), new(mockJWT), false, zap.NewNop())

	c, rec := newCtx(newEcho(), http.MethodPost, "/auth/logout", "")
	require.NoError(t, ctrl.Logout(c))
	requireStatus(t, rec, http.StatusOK)

	for _, name := range []string{constants.CookieAccessToken, constants.CookieRefreshToken} {
		ck := cookieByName(rec, name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestAuthController_Signup(t *testing.T) {
	authSvc := new(mockAuthService)
	ctrl := NewAuthController(authSvc, new(mockJWT), false, zap.NewNop())
	authSvc.On("Signup", mock.Anything, mock.Anything).
		Return(&dto.UserDTO{ID: 1, Email: "new@gearguard.io", Role: constants.RoleEmployee}, nil)

	c, rec := newCtx(newEcho(), http.MethodPost, "/auth/signup",
		`{"email":"new@gearguard.io","name":"New User","password":"secret1"}`)
	require.NoError(t, ctrl.Signup(c))
	requireStatus(t, rec, http.StatusCreated)

	c, rec = newCtx(newEcho(), http.MethodPost, "/auth/signup", `{"email":"new@gearguard.io","name":"N","password":"1"}`)
	require.NoError(t, ctrl.Signup(c))
	requireStatus(t, rec, http.StatusBadRequest)
}
