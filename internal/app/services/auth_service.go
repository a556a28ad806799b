package services

import (
	"context"
	"errors"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// AuthService authenticates the four account types and issues tokens.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Login authenticates an account of the given role against its own table.
// A wrong password and an unknown email are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, role models.UserRole, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		id, hash string
		user     interface{}
	)

	switch role {
	case models.RoleAdmin:
		admin, err := s.userRepo.GetAdminByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginErr(err)
		}
		id, hash = admin.ID, admin.Password
		admin.Password = ""
		user = admin
	case models.RoleStudent:
		student, err := s.userRepo.GetStudentByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginErr(err)
		}
		id, hash = student.ID, student.Password
		student.Password = ""
		user = student
	case models.RoleTeacher:
		teacher, err := s.userRepo.GetTeacherByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginErr(err)
		}
		id, hash = teacher.ID, teacher.Password
		teacher.Password = ""
		user = teacher
	case models.RoleCounsellor:
		counsellor, err := s.userRepo.GetCounsellorByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginErr(err)
		}
		id, hash = counsellor.ID, counsellor.Password
		counsellor.Password = ""
		user = counsellor
	default:
		return nil, apperrors.NewBadRequestError("unknown login role")
	}

	if !auth.CheckPassword(hash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(id, req.Email, string(role))
	if err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Failed to generate token pair")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The account
// is looked up again, so a deleted account cannot keep refreshing its way to
// new access tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	var user interface{}
	switch models.UserRole(claims.Role) {
	case models.RoleAdmin:
		admin, err := s.userRepo.GetAdminByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		admin.Password = ""
		user = admin
	case models.RoleStudent:
		student, err := s.userRepo.GetStudentByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		student.Password = ""
		user = student
	case models.RoleTeacher:
		teacher, err := s.userRepo.GetTeacherByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		teacher.Password = ""
		user = teacher
	case models.RoleCounsellor:
		counsellor, err := s.userRepo.GetCounsellorByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		counsellor.Password = ""
		user = counsellor
	default:
		return nil, apperrors.ErrTokenInvalid
	}

	accessToken, newRefreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		logger.Error().Err(err).Str("userID", claims.UserID).Msg("Failed to generate token pair on refresh")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
		User:         user,
	}, nil
}

func loginErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrInvalidCredentials
	}
	return err
}

// refreshErr hides whether the account behind a refresh token still exists.
func refreshErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrTokenInvalid
	}
	return err
}
