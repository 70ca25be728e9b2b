package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, 8, ParseValue("8"))
	assert.Equal(t, 8, ParseValue(" 8 "))
	assert.Equal(t, 6.5, ParseValue("6.5"))
	assert.Equal(t, "Good", ParseValue("Good"))
	assert.Equal(t, "", ParseValue("  "))
}

func TestNumeric(t *testing.T) {
	assert.Equal(t, 8.0, Numeric(8))
	assert.Equal(t, 8.0, Numeric(int64(8)))
	assert.Equal(t, 6.5, Numeric(6.5))
	assert.Equal(t, 6.5, Numeric(float32(6.5)))
	assert.Equal(t, 0.0, Numeric("Good"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(8))
	assert.True(t, IsNumeric(6.5))
	assert.False(t, IsNumeric("8"))
	assert.False(t, IsNumeric(nil))
}

func TestCleanHeader(t *testing.T) {
	assert.Equal(t, "country", CleanHeader(` "country" `))
	assert.Equal(t, "gov_sat", CleanHeader("gov_sat"))
}
