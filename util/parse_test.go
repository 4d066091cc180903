package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumericString(t *testing.T) {
	assert.Equal(t, "4500000", CleanNumericString("$4,500,000"))
	assert.Equal(t, "6.5", CleanNumericString(" 6.5% "))
	assert.Equal(t, "125000", CleanNumericString("125 000"))
	assert.Equal(t, "", CleanNumericString("  "))
}

func TestParseIntFromAny(t *testing.T) {
	parsed, err := ParseIntFromAny("125,000")
	assert.Nil(t, err)
	assert.Equal(t, int64(125000), parsed)

	// Exports often format integers as floats.
	parsed, err = ParseIntFromAny("50000.0")
	assert.Nil(t, err)
	assert.Equal(t, int64(50000), parsed)

	parsed, err = ParseIntFromAny(float64(1987))
	assert.Nil(t, err)
	assert.Equal(t, int64(1987), parsed)

	_, err = ParseIntFromAny("")
	assert.NotNil(t, err)

	_, err = ParseIntFromAny("n/a")
	assert.NotNil(t, err)
}

func TestParseFloatFromAny(t *testing.T) {
	parsed, err := ParseFloatFromAny("$1,000,000")
	assert.Nil(t, err)
	assert.Equal(t, float64(1000000), parsed)

	parsed, err = ParseFloatFromAny("6.75%")
	assert.Nil(t, err)
	assert.Equal(t, 6.75, parsed)

	parsed, err = ParseFloatFromAny(int64(42))
	assert.Nil(t, err)
	assert.Equal(t, float64(42), parsed)

	_, err = ParseFloatFromAny(nil)
	assert.NotNil(t, err)
}

func TestGetValueAsString(t *testing.T) {
	assert.Equal(t, "hello", GetValueAsString("hello"))
	// No exponent notation for large JSON numbers.
	assert.Equal(t, "78701", GetValueAsString(float64(78701)))
	assert.Equal(t, "true", GetValueAsString(true))
	assert.Equal(t, "", GetValueAsString(nil))
}
