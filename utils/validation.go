package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateLocation rejects the unset (0, 0) coordinate sentinel. A zero
// latitude or longitude means the client never picked a geocoder result.
func ValidateLocation(latitude, longitude float64) error {
	if latitude == 0 || longitude == 0 {
		return NewValidationError(ErrTripFieldsRequired)
	}
	return nil
}
