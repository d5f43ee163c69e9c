package repository

import (
	"context"
	"fmt"

	"latenight/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedBatchSize = 200

// SeedLink is one appearance to create, addressed by index into
// SeedData.Episodes and SeedData.Guests because ids are not known yet.
type SeedLink struct {
	EpisodeIndex int
	GuestIndex   int
	Rating       int
}

type SeedData struct {
	Episodes []models.Episode
	Guests   []models.Guest
	Links    []SeedLink
}

type SeedResult struct {
	Episodes    int
	Guests      int
	Appearances int
}

type SeedRepository interface {
	Clear(ctx context.Context) error
	Reseed(ctx context.Context, data *SeedData) (*SeedResult, error)
}

type seedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

// Clear deletes every appearance, guest and episode
func (r *seedRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(clearAll)
}

// Reseed replaces the whole dataset in a single transaction. data.Episodes
// and data.Guests get their ids filled in.
func (r *seedRepository) Reseed(ctx context.Context, data *SeedData) (*SeedResult, error) {
	appearances := make([]models.Appearance, 0, len(data.Links))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearAll(tx); err != nil {
			return err
		}

		if len(data.Episodes) > 0 {
			if err := tx.CreateInBatches(&data.Episodes, seedBatchSize).Error; err != nil {
				return fmt.Errorf("insert episodes: %w", translateError(err))
			}
		}
		if len(data.Guests) > 0 {
			if err := tx.CreateInBatches(&data.Guests, seedBatchSize).Error; err != nil {
				return fmt.Errorf("insert guests: %w", translateError(err))
			}
		}

		for i, l := range data.Links {
			if l.EpisodeIndex < 0 || l.EpisodeIndex >= len(data.Episodes) {
				return fmt.Errorf("link %d: episode index %d: %w", i, l.EpisodeIndex, ErrReferenceNotFound)
			}
			if l.GuestIndex < 0 || l.GuestIndex >= len(data.Guests) {
				return fmt.Errorf("link %d: guest index %d: %w", i, l.GuestIndex, ErrReferenceNotFound)
			}
			a, err := models.NewAppearance(l.Rating, data.Episodes[l.EpisodeIndex].ID, data.Guests[l.GuestIndex].ID)
			if err != nil {
				return fmt.Errorf("link %d: %w", i, err)
			}
			appearances = append(appearances, *a)
		}

		if len(appearances) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(&appearances, seedBatchSize).Error; err != nil {
				return fmt.Errorf("insert appearances: %w", translateError(err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SeedResult{
		Episodes:    len(data.Episodes),
		Guests:      len(data.Guests),
		Appearances: len(appearances),
	}, nil
}

// clearAll deletes children before parents so FKs hold throughout.
func clearAll(tx *gorm.DB) error {
	for _, m := range []any{&models.Appearance{}, &models.Guest{}, &models.Episode{}} {
		if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, translateError(err))
		}
	}
	return nil
}
