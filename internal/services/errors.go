package services

import (
	"errors"
	"time"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError describes rejected input. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// dateLayout is the calendar date format used throughout the food log.
const dateLayout = "2006-01-02"

func validateDate(date string) error {
	if date == "" {
		return invalid("date is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	return nil
}

// validateTargets checks that configured bounds are positive and ordered.
func validateTargets(minKcal, maxKcal *float64) error {
	if minKcal != nil && *minKcal <= 0 {
		return invalid("min_kcal must be positive")
	}
	if maxKcal != nil && *maxKcal <= 0 {
		return invalid("max_kcal must be positive")
	}
	if minKcal != nil && maxKcal != nil && *minKcal >= *maxKcal {
		return invalid("min_kcal must be less than max_kcal")
	}
	return nil
}
