package handlers

import (
	"net/http"

	"tripplanner/internal/domain"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondDomainError maps domain errors to HTTP responses. Anything
// unclassified is logged and answered with a generic 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
