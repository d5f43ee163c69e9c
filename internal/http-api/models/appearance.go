package models

import "gorm.io/gorm"

const (
	MinRating = 1
	// MaxRating is exclusive: valid ratings are 1, 2, 3 and 4.
	MaxRating = 5
)

type Appearance struct {
	ID        int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    int   `json:"rating" gorm:"not null;check:chk_appearances_rating,rating >= 1 AND rating < 5"`
	EpisodeID int64 `json:"episode_id" gorm:"not null;index"`
	GuestID   int64 `json:"guest_id" gorm:"not null;index"`

	// Associations (forward only, filled by Preload)
	Episode *Episode `json:"episode,omitempty" gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE;"`
	Guest   *Guest   `json:"guest,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE;"`
}

func (Appearance) TableName() string {
	return "appearances"
}

// NewAppearance validates the rating before anything is built.
func NewAppearance(rating int, episodeID, guestID int64) (*Appearance, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	return &Appearance{
		Rating:    rating,
		EpisodeID: episodeID,
		GuestID:   guestID,
	}, nil
}

// BeforeSave re-checks the rating on every create and update.
func (a *Appearance) BeforeSave(tx *gorm.DB) error {
	return ValidateRating(a.Rating)
}
