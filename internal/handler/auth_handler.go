package handler

import (
	"errors"

	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin login requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest carries the shared admin password
type LoginRequest struct {
	Password string `json:"password" example:"admin123"`
}

// Login handles POST /api/v1/auth/login
// @Summary Admin login
// @Description Exchange the shared admin password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin password"
// @Success 200 {object} utils.APIResponse{data=response.LoginResult} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Wrong password"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			utils.UnauthorizedResponse(c, "Kata sandi salah!")
			return
		}
		h.logger.WithError(err).Error("Failed to issue admin token")
		utils.InternalServerErrorResponse(c, "Terjadi kesalahan pada server", err)
		return
	}

	utils.SuccessResponse(c, "Login berhasil! Selamat datang Admin", result)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Admin logout
// @Description Tokens are discarded client-side; this endpoint only confirms
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logout confirmed"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, "Anda telah logout", nil)
}
