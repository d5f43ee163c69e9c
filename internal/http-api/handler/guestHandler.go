package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService service.GuestService
	logger       *slog.Logger
}

func NewGuestHandler(guestService service.GuestService, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{guestService: guestService, logger: logger}
}

func (h *GuestHandler) RegisterRoutes(router *gin.RouterGroup) {
	guests := router.Group("/guests")
	{
		guests.GET("", h.List)
		guests.DELETE("/:id", h.Delete)
	}
}

// List returns every guest without appearances
// GET /guests
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guestService.ListGuests(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// Delete removes a guest and their appearances
// DELETE /guests/:id
func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgGuestNotFound})
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgGuestNotFound})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
