package handler

import (
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard rendering requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetSummary handles GET /api/v1/dashboard
// @Summary Get dashboard summary
// @Description Get saldo, monthly totals, latest announcements, tonight's ronda guards, and overdue dues
// @Tags dashboard
// @Produce json
// @Param Authorization header string false "Bearer token (adds edit affordances)"
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Dashboard summary"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary := h.dashboardService.Summary(middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Dashboard summary", summary)
}
