package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLocation(t *testing.T) {
	assert.Error(t, ValidateLocation(0, 0), "unset sentinel")
	assert.Error(t, ValidateLocation(0, 2.3522), "zero latitude")
	assert.Error(t, ValidateLocation(48.8566, 0), "zero longitude")
	assert.NoError(t, ValidateLocation(48.8566, 2.3522))
	assert.NoError(t, ValidateLocation(-33.8688, 151.2093), "negative coordinates are valid")
}

func TestValidateRequired(t *testing.T) {
	assert.Error(t, ValidateRequired("", "trip_name"))
	assert.Error(t, ValidateRequired("   ", "trip_name"))
	assert.NoError(t, ValidateRequired("Paris", "trip_name"))
}

func TestValidateNonNegative(t *testing.T) {
	assert.Error(t, ValidateNonNegative(-0.01, "budget"))
	assert.NoError(t, ValidateNonNegative(0, "budget"))
	assert.NoError(t, ValidateNonNegative(1000, "budget"))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 10.57, Round(10.567))
	assert.Equal(t, 850.0, Round(850.0000001))
}
