package handler

import (
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// IuranHandler handles monthly dues HTTP requests
type IuranHandler struct {
	iuranService service.IuranService
	logger       *logger.Logger
}

// NewIuranHandler creates a new iuran handler
func NewIuranHandler(iuranService service.IuranService, logger *logger.Logger) *IuranHandler {
	return &IuranHandler{
		iuranService: iuranService,
		logger:       logger,
	}
}

// List handles GET /api/v1/iuran
// @Summary List iuran records
// @Description Render the dues page with optional month filter and household search
// @Tags iuran
// @Produce json
// @Param bulan query string false "Month filter (YYYY-MM)"
// @Param q query string false "Search by house number or resident name"
// @Success 200 {object} utils.APIResponse{data=response.IuranListResponse} "Dues records"
// @Router /api/v1/iuran [get]
func (h *IuranHandler) List(c *gin.Context) {
	list := h.iuranService.List(c.Query("bulan"), c.Query("q"), middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Daftar iuran warga", list)
}

// Get handles GET /api/v1/iuran/:id
// @Summary Get one iuran record
// @Description Get a single record for edit-form population
// @Tags iuran
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} utils.APIResponse{data=models.IuranRecord} "Iuran record"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Router /api/v1/iuran/{id} [get]
func (h *IuranHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	record, err := h.iuranService.Get(id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Data iuran ditemukan", record)
}

// Create handles POST /api/v1/iuran
// @Summary Create an iuran record
// @Description Add a dues record for a household and month (admin only)
// @Tags iuran
// @Accept json
// @Produce json
// @Param request body models.IuranRecord true "Dues record"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Record created"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/iuran [post]
func (h *IuranHandler) Create(c *gin.Context) {
	var record models.IuranRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Error("Invalid iuran request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	record.ID = 0

	result, err := h.iuranService.Save(c.Request.Context(), record)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Update handles PUT /api/v1/iuran/:id
// @Summary Update an iuran record
// @Description Replace a dues record by ID, e.g. flipping its payment status (admin only)
// @Tags iuran
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body models.IuranRecord true "Dues record"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Record updated"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/iuran/{id} [put]
func (h *IuranHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	var record models.IuranRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Error("Invalid iuran request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	record.ID = id

	result, err := h.iuranService.Save(c.Request.Context(), record)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Delete handles DELETE /api/v1/iuran/:id
// @Summary Delete an iuran record
// @Description Remove a dues record by ID (admin only)
// @Tags iuran
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Record deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/iuran/{id} [delete]
func (h *IuranHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	result, err := h.iuranService.Delete(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}
