package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/repository"
)

type EpisodeService interface {
	ListEpisodes(ctx context.Context) ([]dto.EpisodeResponse, error)
	GetEpisode(ctx context.Context, id int64) (*dto.EpisodeDetailResponse, error)
	DeleteEpisode(ctx context.Context, id int64) error
}

type episodeService struct {
	episodeRepo    repository.EpisodeRepository
	appearanceRepo repository.AppearanceRepository
	logger         *slog.Logger
}

func NewEpisodeService(
	episodeRepo repository.EpisodeRepository,
	appearanceRepo repository.AppearanceRepository,
	logger *slog.Logger,
) EpisodeService {
	return &episodeService{
		episodeRepo:    episodeRepo,
		appearanceRepo: appearanceRepo,
		logger:         logger,
	}
}

func (s *episodeService) ListEpisodes(ctx context.Context) ([]dto.EpisodeResponse, error) {
	episodes, err := s.episodeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return dto.FromModelsToEpisodeResponses(episodes), nil
}

// GetEpisode returns the episode together with its appearances
func (s *episodeService) GetEpisode(ctx context.Context, id int64) (*dto.EpisodeDetailResponse, error) {
	episode, err := s.episodeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("get episode %d: %w", id, err)
	}

	appearances, err := s.appearanceRepo.ListByEpisode(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list appearances of episode %d: %w", id, err)
	}

	return dto.FromModelToEpisodeDetailResponse(episode, appearances), nil
}

func (s *episodeService) DeleteEpisode(ctx context.Context, id int64) error {
	if err := s.episodeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEpisodeNotFound
		}
		return fmt.Errorf("delete episode %d: %w", id, err)
	}
	s.logger.Info("episode_deleted", "episode_id", id)
	return nil
}
