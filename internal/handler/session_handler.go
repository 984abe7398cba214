package handler

import (
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles view-session HTTP requests
type SessionHandler struct {
	sessionService service.SessionService
	logger         *logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionService, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// ThemeRequest carries a theme value
type ThemeRequest struct {
	Theme string `json:"theme" example:"dark"`
}

// PageRequest carries a navigation target
type PageRequest struct {
	Page string `json:"page" example:"pageKas"`
}

// State handles GET /api/v1/session/theme
// @Summary Get the session state
// @Description Get the current theme, active page, and ronda week offset
// @Tags session
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.SessionResponse} "Session state"
// @Router /api/v1/session/theme [get]
func (h *SessionHandler) State(c *gin.Context) {
	utils.SuccessResponse(c, "Session state", h.sessionService.State())
}

// SetTheme handles PUT /api/v1/session/theme
// @Summary Set the theme
// @Description Set and persist the theme; dark and light are accepted
// @Tags session
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme value"
// @Success 200 {object} utils.APIResponse{data=response.SessionResponse} "Theme applied"
// @Failure 400 {object} utils.APIResponse "Unknown theme"
// @Router /api/v1/session/theme [put]
func (h *SessionHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid theme request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	state, err := h.sessionService.SetTheme(req.Theme)
	if err != nil {
		utils.BadRequestResponse(c, "Tema tidak dikenal", err)
		return
	}

	utils.SuccessResponse(c, "Tema disimpan", state)
}

// ToggleTheme handles POST /api/v1/session/theme/toggle
// @Summary Toggle the theme
// @Description Flip between dark and light and persist the result
// @Tags session
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.SessionResponse} "Theme applied"
// @Router /api/v1/session/theme/toggle [post]
func (h *SessionHandler) ToggleTheme(c *gin.Context) {
	state, err := h.sessionService.ToggleTheme()
	if err != nil {
		h.logger.WithError(err).Error("Failed to toggle theme")
		utils.InternalServerErrorResponse(c, "Gagal menyimpan tema", err)
		return
	}

	utils.SuccessResponse(c, "Tema disimpan", state)
}

// SetPage handles POST /api/v1/session/page
// @Summary Set the active page
// @Description Record the navigation target for the session
// @Tags session
// @Accept json
// @Produce json
// @Param request body PageRequest true "Page id"
// @Success 200 {object} utils.APIResponse{data=response.SessionResponse} "Page recorded"
// @Failure 400 {object} utils.APIResponse "Unknown page"
// @Router /api/v1/session/page [post]
func (h *SessionHandler) SetPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid page request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	state, err := h.sessionService.SetPage(req.Page)
	if err != nil {
		utils.BadRequestResponse(c, "Halaman tidak dikenal", err)
		return
	}

	utils.SuccessResponse(c, "Halaman disimpan", state)
}
