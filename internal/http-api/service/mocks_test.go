package service

import (
	"context"
	"io"
	"log/slog"

	"latenight/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) List(ctx context.Context) ([]models.Episode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) List(ctx context.Context) ([]models.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *MockGuestRepository) GetByID(ctx context.Context, id int64) (*models.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guest), args.Error(1)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAppearanceRepository struct {
	mock.Mock
}

func (m *MockAppearanceRepository) Create(ctx context.Context, a *models.Appearance) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAppearanceRepository) GetByID(ctx context.Context, id int64) (*models.Appearance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appearance), args.Error(1)
}

func (m *MockAppearanceRepository) ListByEpisode(ctx context.Context, episodeID int64) ([]models.Appearance, error) {
	args := m.Called(ctx, episodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appearance), args.Error(1)
}
