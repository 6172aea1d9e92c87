package controllers

import (
	"net/http"
	"strings"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService   services.AuthServiceInterface
	jwtSvc        service.JWTService
	secureCookies bool
	logger        *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	secureCookies bool,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService:   authService,
		jwtSvc:        jwtSvc,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Signup: bind failed", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid signup payload"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Signup: failed", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, user, "user registered", http.StatusCreated)
}

// Login accepts JSON or form data; the form may carry the email as username.
func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: bind failed", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid login payload"))
	}
	if payload.Email == "" {
		payload.Email = payload.Username
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	resp, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctrl.setTokenCookies(c, resp.AccessToken, resp.RefreshToken)
	return utils.SuccessResponse(c, resp, "login successful", http.StatusOK)
}

// Refresh issues a new token pair from a refresh token given in the body or
// the refresh_token cookie.
func (ctrl *AuthController) Refresh(c echo.Context) error {
	var payload dto.RefreshDTO
	_ = c.Bind(&payload)

	token := payload.RefreshToken
	if token == "" {
		if cookie, err := c.Cookie(constants.CookieRefreshToken); err == nil {
			token = cookie.Value
		}
	}
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(token)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "a refresh token is required", apperrors.ErrTokenIsNotRefresh, nil))
	}

	access, refresh, err := ctrl.jwtSvc.GenerateTokens(claims.UserID, claims.Role)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctrl.setTokenCookies(c, access, refresh)
	return utils.SuccessResponse(c, dto.AuthResponseDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, "tokens refreshed", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	for _, name := range []string{constants.CookieAccessToken, constants.CookieRefreshToken} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   ctrl.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return utils.SuccessResponse(c, nil, "successfully logged out", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	user, err := ctrl.authService.Me(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, user, "current user", http.StatusOK)
}

func (ctrl *AuthController) setTokenCookies(c echo.Context, access, refresh string) {
	cookies := []struct {
		name  string
		value string
		ttl   time.Duration
	}{
		{constants.CookieAccessToken, access, ctrl.jwtSvc.GetAccessTokenTTL()},
		{constants.CookieRefreshToken, refresh, ctrl.jwtSvc.GetRefreshTokenTTL()},
	}
	for _, ck := range cookies {
		c.SetCookie(&http.Cookie{
			Name:     ck.name,
			Value:    "Bearer " + ck.value,
			Path:     "/",
			Expires:  time.Now().Add(ck.ttl),
			MaxAge:   int(ck.ttl.Seconds()),
			HttpOnly: true,
			Secure:   ctrl.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
