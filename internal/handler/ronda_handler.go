package handler

import (
	"strconv"

	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RondaHandler handles night-watch schedule HTTP requests
type RondaHandler struct {
	rondaService   service.RondaService
	sessionService service.SessionService
	logger         *logger.Logger
}

// NewRondaHandler creates a new ronda handler
func NewRondaHandler(rondaService service.RondaService, sessionService service.SessionService, logger *logger.Logger) *RondaHandler {
	return &RondaHandler{
		rondaService:   rondaService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Schedule handles GET /api/v1/ronda/schedule
// @Summary Get the weekly ronda schedule
// @Description Render a seven-day guard grid; offset defaults to the session week offset
// @Tags ronda
// @Produce json
// @Param offset query int false "Week offset relative to the current week"
// @Success 200 {object} utils.APIResponse{data=response.RondaScheduleResponse} "Weekly schedule"
// @Failure 400 {object} utils.APIResponse "Invalid offset"
// @Router /api/v1/ronda/schedule [get]
func (h *RondaHandler) Schedule(c *gin.Context) {
	offset := h.sessionService.WeekOffset()
	if offsetStr := c.Query("offset"); offsetStr != "" {
		value, err := strconv.Atoi(offsetStr)
		if err != nil {
			utils.BadRequestResponse(c, "Offset tidak valid", err)
			return
		}
		offset = value
	}

	schedule := h.rondaService.Schedule(offset, middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Jadwal ronda mingguan", schedule)
}

// NextWeek handles POST /api/v1/ronda/week/next
// @Summary Advance the schedule one week
// @Description Shift the session week offset forward and re-render the schedule
// @Tags ronda
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.RondaScheduleResponse} "Weekly schedule"
// @Router /api/v1/ronda/week/next [post]
func (h *RondaHandler) NextWeek(c *gin.Context) {
	offset := h.sessionService.ShiftWeek(1)
	schedule := h.rondaService.Schedule(offset, middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Jadwal ronda mingguan", schedule)
}

// PrevWeek handles POST /api/v1/ronda/week/prev
// @Summary Rewind the schedule one week
// @Description Shift the session week offset backward and re-render the schedule
// @Tags ronda
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.RondaScheduleResponse} "Weekly schedule"
// @Router /api/v1/ronda/week/prev [post]
func (h *RondaHandler) PrevWeek(c *gin.Context) {
	offset := h.sessionService.ShiftWeek(-1)
	schedule := h.rondaService.Schedule(offset, middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Jadwal ronda mingguan", schedule)
}

// ResetWeek handles POST /api/v1/ronda/week/reset
// @Summary Return the schedule to the current week
// @Description Reset the session week offset to zero and re-render the schedule
// @Tags ronda
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.RondaScheduleResponse} "Weekly schedule"
// @Router /api/v1/ronda/week/reset [post]
func (h *RondaHandler) ResetWeek(c *gin.Context) {
	offset := h.sessionService.ResetWeek()
	schedule := h.rondaService.Schedule(offset, middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Jadwal ronda mingguan", schedule)
}

// Get handles GET /api/v1/ronda/:id
// @Summary Get one ronda shift
// @Description Get a single shift for edit-form population
// @Tags ronda
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} utils.APIResponse{data=models.RondaShift} "Ronda shift"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Shift not found"
// @Router /api/v1/ronda/{id} [get]
func (h *RondaHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	shift, err := h.rondaService.Get(id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Jadwal ditemukan", shift)
}

// Create handles POST /api/v1/ronda
// @Summary Create a ronda shift
// @Description Add a two-guard night-watch shift (admin only)
// @Tags ronda
// @Accept json
// @Produce json
// @Param request body models.RondaShift true "Shift"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Shift created"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/ronda [post]
func (h *RondaHandler) Create(c *gin.Context) {
	var shift models.RondaShift
	if err := c.ShouldBindJSON(&shift); err != nil {
		h.logger.WithError(err).Error("Invalid ronda request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	shift.ID = 0

	result, err := h.rondaService.Save(c.Request.Context(), shift)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Update handles PUT /api/v1/ronda/:id
// @Summary Update a ronda shift
// @Description Replace a night-watch shift by ID (admin only)
// @Tags ronda
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Param request body models.RondaShift true "Shift"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Shift updated"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Shift not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/ronda/{id} [put]
func (h *RondaHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	var shift models.RondaShift
	if err := c.ShouldBindJSON(&shift); err != nil {
		h.logger.WithError(err).Error("Invalid ronda request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	shift.ID = id

	result, err := h.rondaService.Save(c.Request.Context(), shift)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Delete handles DELETE /api/v1/ronda/:id
// @Summary Delete a ronda shift
// @Description Remove a night-watch shift by ID (admin only)
// @Tags ronda
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Shift deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Shift not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/ronda/{id} [delete]
func (h *RondaHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	result, err := h.rondaService.Delete(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}
