package repository

import (
	"context"
	"fmt"

	"latenight/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppearanceRepository interface {
	Create(ctx context.Context, a *models.Appearance) error
	GetByID(ctx context.Context, id int64) (*models.Appearance, error)
	ListByEpisode(ctx context.Context, episodeID int64) ([]models.Appearance, error)
}

type appearanceRepository struct {
	db *gorm.DB
}

func NewAppearanceRepository(db *gorm.DB) AppearanceRepository {
	return &appearanceRepository{db: db}
}

// Create validates the rating, checks that both referenced rows exist and
// inserts the appearance, all in one transaction. a.ID is set on success.
func (r *appearanceRepository) Create(ctx context.Context, a *models.Appearance) error {
	if err := models.ValidateRating(a.Rating); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Episode{}, a.EpisodeID); err != nil {
			return fmt.Errorf("episode %d: %w", a.EpisodeID, err)
		}
		if err := exists(tx, &models.Guest{}, a.GuestID); err != nil {
			return fmt.Errorf("guest %d: %w", a.GuestID, err)
		}
		if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
			return translateError(err)
		}
		return nil
	})
}

// GetByID loads an appearance with its episode and guest
func (r *appearanceRepository) GetByID(ctx context.Context, id int64) (*models.Appearance, error) {
	var a models.Appearance
	err := r.db.WithContext(ctx).
		Preload("Episode").
		Preload("Guest").
		First(&a, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

// ListByEpisode returns the appearances of one episode with guests loaded
func (r *appearanceRepository) ListByEpisode(ctx context.Context, episodeID int64) ([]models.Appearance, error) {
	var list []models.Appearance
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Where("episode_id = ?", episodeID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translateError(err)
	}
	return list, nil
}
