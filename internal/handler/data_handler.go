package handler

import (
	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DataHandler handles dataset refresh and health requests
type DataHandler struct {
	syncService service.SyncService
	gateway     gateway.SheetGateway
	logger      *logger.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(syncService service.SyncService, gw gateway.SheetGateway, logger *logger.Logger) *DataHandler {
	return &DataHandler{
		syncService: syncService,
		gateway:     gw,
		logger:      logger,
	}
}

// Refresh handles POST /api/v1/data/refresh
// @Summary Reload the dataset
// @Description Fetch the full dataset from the sheet, or report the sample fallback (admin only)
// @Tags data
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.SyncResult} "Dataset reloaded"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/data/refresh [post]
func (h *DataHandler) Refresh(c *gin.Context) {
	result, err := h.syncService.LoadAll(c.Request.Context())
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	if result.Notice != "" {
		utils.WarningResponse(c, result.Notice, result)
		return
	}

	utils.SuccessResponse(c, "Data berhasil dimuat ulang", result)
}

// Health handles GET /api/v1/health
// @Summary Health check
// @Description Report service status, gateway configuration, and in-flight sheet calls
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.HealthResponse} "Service health"
// @Router /api/v1/health [get]
func (h *DataHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, "Server is running", response.HealthResponse{
		Status:          "ok",
		Service:         "EMURAI Backend Service",
		SheetConfigured: h.gateway.Configured(),
		GatewayInFlight: h.gateway.InFlight(),
	})
}
