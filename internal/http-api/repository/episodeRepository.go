package repository

import (
	"context"

	"latenight/internal/http-api/models"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	List(ctx context.Context) ([]models.Episode, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	Delete(ctx context.Context, id int64) error
}

type episodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

// List returns every episode in insertion (id) order
func (r *episodeRepository) List(ctx context.Context) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).Order("id").Find(&episodes).Error; err != nil {
		return nil, translateError(err)
	}
	return episodes, nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var e models.Episode
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

// Delete removes the episode and all of its appearances
func (r *episodeRepository) Delete(ctx context.Context, id int64) error {
	return deleteWithAppearances(ctx, r.db, &models.Episode{}, "episode_id", id)
}
