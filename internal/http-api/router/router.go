package router

import (
	"log/slog"

	"latenight/internal/config"
	"latenight/internal/http-api/handler"
	"latenight/internal/http-api/middleware"
	"latenight/internal/http-api/repository"
	"latenight/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Services struct {
	Episodes    service.EpisodeService
	Guests      service.GuestService
	Appearances service.AppearanceService
	DB          handler.Pinger
}

// NewServices wires repositories and services over one gorm handle.
func NewServices(db *gorm.DB, ping handler.Pinger, logger *slog.Logger) Services {
	episodeRepo := repository.NewEpisodeRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	appearanceRepo := repository.NewAppearanceRepository(db)

	return Services{
		Episodes:    service.NewEpisodeService(episodeRepo, appearanceRepo, logger),
		Guests:      service.NewGuestService(guestRepo, logger),
		Appearances: service.NewAppearanceService(appearanceRepo, logger),
		DB:          ping,
	}
}

// New builds the gin engine with middleware and every route registered.
func New(cfg *config.Config, logger *slog.Logger, svcs Services) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	root := &r.RouterGroup
	handler.NewHealthHandler(svcs.DB, logger).RegisterRoutes(root)
	handler.NewEpisodeHandler(svcs.Episodes, logger).RegisterRoutes(root)
	handler.NewGuestHandler(svcs.Guests, logger).RegisterRoutes(root)
	handler.NewAppearanceHandler(svcs.Appearances, logger).RegisterRoutes(root)

	return r
}
