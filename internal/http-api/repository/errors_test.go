package repository

import (
	"errors"
	"testing"

	"latenight/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "record not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{
			name: "postgres foreign key",
			in:   &pgconn.PgError{Code: "23503", ConstraintName: "fk_appearances_episode"},
			want: ErrReferenceNotFound,
		},
		{
			name: "postgres check",
			in:   &pgconn.PgError{Code: "23514", ConstraintName: "chk_appearances_rating"},
			want: models.ErrValidation,
		},
		{name: "gorm foreign key", in: gorm.ErrForeignKeyViolated, want: ErrReferenceNotFound},
		{name: "gorm check", in: gorm.ErrCheckConstraintViolated, want: models.ErrValidation},
		{
			name: "sqlite foreign key",
			in:   errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			want: ErrReferenceNotFound,
		},
		{
			name: "sqlite check",
			in:   errors.New("constraint failed: CHECK constraint failed: chk_appearances_rating (275)"),
			want: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.in), tt.want)
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	assert.Nil(t, translateError(nil))

	other := errors.New("disk I/O error")
	assert.Equal(t, other, translateError(other))

	unique := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, error(unique), translateError(unique))
}
