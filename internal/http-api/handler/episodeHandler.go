package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type EpisodeHandler struct {
	episodeService service.EpisodeService
	logger         *slog.Logger
}

func NewEpisodeHandler(episodeService service.EpisodeService, logger *slog.Logger) *EpisodeHandler {
	return &EpisodeHandler{episodeService: episodeService, logger: logger}
}

// RegisterRoutes registers episode routes
func (h *EpisodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	episodes := router.Group("/episodes")
	{
		episodes.GET("", h.List)
		episodes.GET("/:id", h.Get)
		episodes.DELETE("/:id", h.Delete)
	}
}

// List returns every episode without appearances
// GET /episodes
func (h *EpisodeHandler) List(c *gin.Context) {
	episodes, err := h.episodeService.ListEpisodes(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}

// Get returns one episode with its appearances
// GET /episodes/:id
func (h *EpisodeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgEpisodeNotFound})
		return
	}

	episode, err := h.episodeService.GetEpisode(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEpisodeNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgEpisodeNotFound})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// Delete removes an episode and its appearances
// DELETE /episodes/:id
func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgEpisodeNotFound})
		return
	}

	if err := h.episodeService.DeleteEpisode(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEpisodeNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgEpisodeNotFound})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
