package handler

import (
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// KasHandler handles cash ledger HTTP requests
type KasHandler struct {
	kasService service.KasService
	logger     *logger.Logger
}

// NewKasHandler creates a new kas handler
func NewKasHandler(kasService service.KasService, logger *logger.Logger) *KasHandler {
	return &KasHandler{
		kasService: kasService,
		logger:     logger,
	}
}

// List handles GET /api/v1/kas
// @Summary List kas entries
// @Description Render the ledger page with optional month and type filters, newest first
// @Tags kas
// @Produce json
// @Param bulan query string false "Month filter (YYYY-MM)"
// @Param tipe query string false "Type filter (masuk or keluar)"
// @Success 200 {object} utils.APIResponse{data=response.KasListResponse} "Ledger entries"
// @Router /api/v1/kas [get]
func (h *KasHandler) List(c *gin.Context) {
	list := h.kasService.List(c.Query("bulan"), c.Query("tipe"), middleware.IsAdmin(c))
	utils.SuccessResponse(c, "Daftar transaksi kas", list)
}

// Get handles GET /api/v1/kas/:id
// @Summary Get one kas entry
// @Description Get a single entry for edit-form population
// @Tags kas
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} utils.APIResponse{data=models.KasEntry} "Kas entry"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Entry not found"
// @Router /api/v1/kas/{id} [get]
func (h *KasHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	entry, err := h.kasService.Get(id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Transaksi ditemukan", entry)
}

// Create handles POST /api/v1/kas
// @Summary Create a kas entry
// @Description Add a transaction to the ledger (admin only)
// @Tags kas
// @Accept json
// @Produce json
// @Param request body models.KasEntry true "Transaction"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Transaction created"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/kas [post]
func (h *KasHandler) Create(c *gin.Context) {
	var entry models.KasEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.logger.WithError(err).Error("Invalid kas request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	entry.ID = 0

	result, err := h.kasService.Save(c.Request.Context(), entry)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Update handles PUT /api/v1/kas/:id
// @Summary Update a kas entry
// @Description Replace a ledger transaction by ID (admin only)
// @Tags kas
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body models.KasEntry true "Transaction"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Transaction updated"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Entry not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/kas/{id} [put]
func (h *KasHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	var entry models.KasEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.logger.WithError(err).Error("Invalid kas request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	entry.ID = id

	result, err := h.kasService.Save(c.Request.Context(), entry)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}

// Delete handles DELETE /api/v1/kas/:id
// @Summary Delete a kas entry
// @Description Remove a ledger transaction by ID (admin only)
// @Tags kas
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} utils.APIResponse{data=response.MutationResult} "Transaction deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 401 {object} utils.APIResponse "Admin token required"
// @Failure 404 {object} utils.APIResponse "Entry not found"
// @Failure 502 {object} utils.APIResponse "Sheet gateway failure"
// @Security BearerAuth
// @Router /api/v1/kas/{id} [delete]
func (h *KasHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "ID tidak valid", err)
		return
	}

	result, err := h.kasService.Delete(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}
