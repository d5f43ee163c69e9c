package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"latenight/internal/http-api/dto"
	"latenight/internal/http-api/repository"
)

type GuestService interface {
	ListGuests(ctx context.Context) ([]dto.GuestResponse, error)
	DeleteGuest(ctx context.Context, id int64) error
}

type guestService struct {
	guestRepo repository.GuestRepository
	logger    *slog.Logger
}

func NewGuestService(guestRepo repository.GuestRepository, logger *slog.Logger) GuestService {
	return &guestService{guestRepo: guestRepo, logger: logger}
}

func (s *guestService) ListGuests(ctx context.Context) ([]dto.GuestResponse, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return dto.FromModelsToGuestResponses(guests), nil
}

// DeleteGuest removes the guest and, with it, every appearance they made
func (s *guestService) DeleteGuest(ctx context.Context, id int64) error {
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("delete guest %d: %w", id, err)
	}
	s.logger.Info("guest_deleted", "guest_id", id)
	return nil
}
