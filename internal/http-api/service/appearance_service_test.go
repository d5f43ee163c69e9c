package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"latenight/internal/http-api/models"
	"latenight/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAppearance(t *testing.T) {
	repo := new(MockAppearanceRepository)
	svc := NewAppearanceService(repo, discardLogger())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appearance) bool {
		return a.Rating == 1 && a.EpisodeID == 1 && a.GuestID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Appearance).ID = 10
	}).Return(nil)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&models.Appearance{
		ID: 10, Rating: 1, EpisodeID: 1, GuestID: 1,
		Episode: &models.Episode{ID: 1, Date: "1/11/99", Number: 1},
		Guest:   &models.Guest{ID: 1, Name: "Michael J. Fox", Occupation: "actor"},
	}, nil)

	resp, err := svc.CreateAppearance(context.Background(), 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, 1, resp.Rating)
	require.NotNil(t, resp.Episode)
	require.NotNil(t, resp.Guest)
	assert.Equal(t, "1/11/99", resp.Episode.Date)
	assert.Equal(t, "Michael J. Fox", resp.Guest.Name)
	repo.AssertExpectations(t)
}

func TestCreateAppearance_InvalidRatingNeverReachesStore(t *testing.T) {
	for _, rating := range []int{0, 5, -3, 10} {
		t.Run(fmt.Sprintf("rating_%d", rating), func(t *testing.T) {
			repo := new(MockAppearanceRepository)
			svc := NewAppearanceService(repo, discardLogger())

			_, err := svc.CreateAppearance(context.Background(), rating, 1, 1)
			assert.ErrorIs(t, err, ErrInvalidAppearance)
			assert.ErrorIs(t, err, models.ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAppearance_UnknownReference(t *testing.T) {
	repo := new(MockAppearanceRepository)
	svc := NewAppearanceService(repo, discardLogger())
	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("episode 99: %w", repository.ErrReferenceNotFound))

	_, err := svc.CreateAppearance(context.Background(), 2, 99, 1)
	assert.ErrorIs(t, err, ErrInvalidAppearance)
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)
}

func TestCreateAppearance_StorageError(t *testing.T) {
	repo := new(MockAppearanceRepository)
	svc := NewAppearanceService(repo, discardLogger())
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.CreateAppearance(context.Background(), 2, 1, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAppearance)
}
