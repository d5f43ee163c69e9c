package handler_test

import (
	"context"
	"io"
	"log/slog"

	"latenight/internal/http-api/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// --- MOCK SERVICES ---

type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) ListEpisodes(ctx context.Context) ([]dto.EpisodeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) GetEpisode(ctx context.Context, id int64) (*dto.EpisodeDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeDetailResponse), args.Error(1)
}

func (m *MockEpisodeService) DeleteEpisode(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockGuestService struct {
	mock.Mock
}

func (m *MockGuestService) ListGuests(ctx context.Context) ([]dto.GuestResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GuestResponse), args.Error(1)
}

func (m *MockGuestService) DeleteGuest(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAppearanceService struct {
	mock.Mock
}

func (m *MockAppearanceService) CreateAppearance(ctx context.Context, rating int, episodeID, guestID int64) (*dto.AppearanceResponse, error) {
	args := m.Called(ctx, rating, episodeID, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppearanceResponse), args.Error(1)
}
