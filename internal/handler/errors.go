package handler

import (
	"errors"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondCommandError maps a service error onto the response envelope.
// Every mutating handler funnels its errors through here so the status
// codes stay uniform across kas, iuran, ronda, and info.
func respondCommandError(c *gin.Context, log *logger.Logger, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		utils.BadRequestResponse(c, "Data tidak valid", err)
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, "Data tidak ditemukan")
	case errors.Is(err, gateway.ErrRejected):
		log.WithError(err).Error("Sheet rejected the command")
		utils.BadGatewayResponse(c, "Permintaan ditolak oleh Google Sheets", err)
	case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, gateway.ErrNotConfigured):
		log.WithError(err).Error("Sheet gateway unavailable")
		utils.BadGatewayResponse(c, "Gagal terhubung ke Google Sheets", err)
	default:
		log.WithError(err).Error("Command failed")
		utils.InternalServerErrorResponse(c, "Terjadi kesalahan pada server", err)
	}
}
