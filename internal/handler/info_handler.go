package handler

import (
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InfoHandler handles announcement HTTP requests
type InfoHandler struct {
	infoService service.InfoService
	logger      *logger.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(infoService service.InfoService, logger *logger.Logger) *InfoHandler {
	return &InfoHandler{
		infoService: infoService,
		logger:      logger,
	}
}

// List handles GET /api/v1/info
// @Summary List announcements
// @Description Render all announcements, newest first
// @Tags info
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.InfoListResponse} "Announcements"
// @Router /api/v1/info [get]
func (h *InfoHandler) List(c *gin.Context) {
	list := h.infoService.List(middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Daftar pengumuman", list)
}

// Get handles GET /api/v1/info/:id
// @Summary Get one announcement
// @Description Get a single announcement for edit-form population
// @Tags info
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=models.InfoItem} "Announcement"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Router /api/v1/info/{id} [get]
func (h *InfoHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	item, err := h.infoService.Get(id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Pengumuman ditemukan", item)
}

// Create handles POST /api/v1/info
// @Summary Create an announcement
// @Description Publish an announcement; it becomes the newest item (admin only)
// @Tags info
// @Accept json
// @Produce json
// @Param request body models.InfoItem true "Announcement"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Announcement created"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/info [post]
func (h *InfoHandler) Create(c *gin.Context) {
	var item models.InfoItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.logger.WithError(err).Error("Invalid info request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	item.ID = 0

	result, err := h.infoService.Save(c.Request.Context(), item)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Update handles PUT /api/v1/info/:id
// @Summary Update an announcement
// @Description Replace an announcement by ID, keeping its position (admin only)
// @Tags info
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body models.InfoItem true "Announcement"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Announcement updated"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/info/{id} [put]
func (h *InfoHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	var item models.InfoItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.logger.WithError(err).Error("Invalid info request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	item.ID = id

	result, err := h.infoService.Save(c.Request.Context(), item)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Delete handles DELETE /api/v1/info/:id
// @Summary Delete an announcement
// @Description Remove an announcement by ID (admin only)
// @Tags info
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Announcement deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/info/{id} [delete]
func (h *InfoHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	result, err := h.infoService.Delete(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}
