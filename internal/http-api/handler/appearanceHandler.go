package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AppearanceHandler struct {
	appearanceService service.AppearanceService
	logger            *slog.Logger
}

func NewAppearanceHandler(appearanceService service.AppearanceService, logger *slog.Logger) *AppearanceHandler {
	return &AppearanceHandler{appearanceService: appearanceService, logger: logger}
}

func (h *AppearanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/appearances", h.Create)
}

// Create stores a new appearance. Every client-side problem, from bad JSON
// to an unknown guest, gets the same generic 400 body.
// POST /appearances
func (h *AppearanceHandler) Create(c *gin.Context) {
	var req dto.CreateAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("appearance_rejected", "reason", err.Error())
		respondValidationErrors(c)
		return
	}

	appearance, err := h.appearanceService.CreateAppearance(c.Request.Context(), *req.Rating, *req.EpisodeID, *req.GuestID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAppearance) {
			h.logger.Debug("appearance_rejected", "reason", err.Error())
			respondValidationErrors(c)
			return
		}
		respondInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, appearance)
}
