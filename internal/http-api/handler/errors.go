package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
)

const (
	msgEpisodeNotFound  = "Episode not found"
	msgGuestNotFound    = "Guest not found"
	msgValidationErrors = "validation errors"
	msgInternalError    = "internal server error"
)

// parseID reads the :id path param. Non-numeric ids cannot name a row, so
// callers answer them like a missing record.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func respondValidationErrors(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: []string{msgValidationErrors}})
}

// respondInternal logs the cause and hides it from the caller.
func respondInternal(c *gin.Context, logger *slog.Logger, err error) {
	_ = c.Error(err)
	logger.Error("request_failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
		"error", err.Error(),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternalError})
}
