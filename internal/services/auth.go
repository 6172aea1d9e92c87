package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

// Signup always creates an employee; roles are granted by an administrator.
func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("email already registered")
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         strings.TrimSpace(payload.Name),
		PasswordHash: hash,
		Role:         constants.RoleEmployee,
	}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("email already registered")
		}
		return nil, err
	}
	user.ID = id

	s.logger.Info("user signed up", zap.Uint64("user_id", id), zap.String("email", email))
	return userToDTO(user), nil
}

// Login checks the password and that the selected role is the user's role.
// Every failure is reported as 401 without telling which check failed, except
// for the role mismatch.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("login for unknown user")
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, "incorrect email or password", apperrors.ErrInvalidCredentials, nil)
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		logger.Warn("wrong password", zap.Uint64("user_id", user.ID))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "incorrect email or password", apperrors.ErrInvalidCredentials, nil)
	}

	if payload.Role != user.Role {
		logger.Warn("role mismatch", zap.String("selected", payload.Role), zap.String("actual", user.Role))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "role mismatch", apperrors.ErrRoleMismatch, nil)
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         *userToDTO(user),
	}, nil
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return userToDTO(user), nil
}
