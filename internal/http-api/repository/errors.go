package repository

import (
	"errors"
	"fmt"
	"strings"

	"latenight/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// PostgreSQL SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver and gorm errors onto the repository sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, models.ErrInvalidRating)
		}
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%v: %w", err, models.ErrInvalidRating)
	}

	// sqlite reports constraint failures only through the message text
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, msg)
	case strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%s: %w", msg, models.ErrInvalidRating)
	}
	return err
}
