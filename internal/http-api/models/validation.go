package models

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

var ErrInvalidRating = &ValidationError{Field: "rating", Message: "Invalid rating."}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateRating accepts 1 <= rating < 5.
func ValidateRating(rating int) error {
	if rating < MinRating || rating >= MaxRating {
		return ErrInvalidRating
	}
	return nil
}
