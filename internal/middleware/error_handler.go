package middleware

import (
	"fmt"

	"emurai-be-svc/pkg/logger"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and answers with a 500 envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", fmt.Sprintf("%v", recovered)).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Terjadi kesalahan pada server", nil)
		c.Abort()
	})
}

// NoRouteHandler answers unknown paths with a 404 envelope
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Endpoint tidak ditemukan")
	}
}

// NoMethodHandler answers known paths hit with the wrong method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(405, utils.APIResponse{
			Success: false,
			Message: "Metode tidak diizinkan",
		})
	}
}
