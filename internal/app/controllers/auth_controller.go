package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/services"
	"github.com/vwings/eduadmin/internal/middleware"
)

// AuthController handles login for the four account types.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// LoginAdmin authenticates an administrator
// @Summary Admin login
// @Description Authenticates an admin account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Authenticated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	c.login(ctx, models.RoleAdmin)
}

// LoginStudent authenticates a student
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/student/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	c.login(ctx, models.RoleStudent)
}

// LoginTeacher authenticates a teacher
// @Summary Teacher login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/teacher/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	c.login(ctx, models.RoleTeacher)
}

// LoginCounsellor authenticates a counsellor
// @Summary Counsellor login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/counsellor/login [post]
func (c *AuthController) LoginCounsellor(ctx *gin.Context) {
	c.login(ctx, models.RoleCounsellor)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "New token pair"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

func (c *AuthController) login(ctx *gin.Context, role models.UserRole) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
