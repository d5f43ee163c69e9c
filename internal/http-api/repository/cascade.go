package repository

import (
	"context"
	"fmt"

	"latenight/internal/http-api/models"

	"gorm.io/gorm"
)

// deleteWithAppearances removes the parent row and every appearance whose
// fkColumn points at it, in one transaction. The explicit delete keeps the
// cascade independent of whether the engine enforces ON DELETE CASCADE.
func deleteWithAppearances(ctx context.Context, db *gorm.DB, parent any, fkColumn string, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(fkColumn+" = ?", id).Delete(&models.Appearance{}).Error; err != nil {
			return fmt.Errorf("delete appearances: %w", translateError(err))
		}

		result := tx.Delete(parent, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// exists reports ErrReferenceNotFound when no row of model has the given id.
func exists(tx *gorm.DB, model any, id int64) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translateError(err)
	}
	if count == 0 {
		return ErrReferenceNotFound
	}
	return nil
}
