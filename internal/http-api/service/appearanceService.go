package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/models"
	"latenight/internal/http-api/repository"
)

type AppearanceService interface {
	CreateAppearance(ctx context.Context, rating int, episodeID, guestID int64) (*dto.AppearanceResponse, error)
}

type appearanceService struct {
	appearanceRepo repository.AppearanceRepository
	logger         *slog.Logger
}

func NewAppearanceService(appearanceRepo repository.AppearanceRepository, logger *slog.Logger) AppearanceService {
	return &appearanceService{appearanceRepo: appearanceRepo, logger: logger}
}

// CreateAppearance validates and stores a new appearance and returns it
// with both episode and guest expanded. Bad ratings and unknown
// episode/guest ids are reported as ErrInvalidAppearance.
func (s *appearanceService) CreateAppearance(ctx context.Context, rating int, episodeID, guestID int64) (*dto.AppearanceResponse, error) {
	appearance, err := models.NewAppearance(rating, episodeID, guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppearance, err)
	}

	if err := s.appearanceRepo.Create(ctx, appearance); err != nil {
		if errors.Is(err, models.ErrValidation) || errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAppearance, err)
		}
		return nil, fmt.Errorf("create appearance: %w", err)
	}

	created, err := s.appearanceRepo.GetByID(ctx, appearance.ID)
	if err != nil {
		return nil, fmt.Errorf("reload appearance %d: %w", appearance.ID, err)
	}

	s.logger.Info("appearance_created",
		"appearance_id", created.ID,
		"episode_id", created.EpisodeID,
		"guest_id", created.GuestID,
		"rating", created.Rating,
	)
	return dto.FromModelToAppearanceResponse(created), nil
}
