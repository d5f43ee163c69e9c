package repository

import (
	"context"

	"latenight/internal/http-api/models"

	"gorm.io/gorm"
)

type GuestRepository interface {
	List(ctx context.Context) ([]models.Guest, error)
	GetByID(ctx context.Context, id int64) (*models.Guest, error)
	Delete(ctx context.Context, id int64) error
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).Order("id").Find(&guests).Error; err != nil {
		return nil, translateError(err)
	}
	return guests, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*models.Guest, error) {
	var g models.Guest
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

// Delete removes the guest and all of their appearances
func (r *guestRepository) Delete(ctx context.Context, id int64) error {
	return deleteWithAppearances(ctx, r.db, &models.Guest{}, "guest_id", id)
}
