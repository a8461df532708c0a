package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingCodeFormat(t *testing.T) {
	code := GenerateTrackingCode()
	assert.Regexp(t, `^G-[0-9A-F]{16}$`, code)
}

func TestGenerateTrackingCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateTrackingCode()
		assert.False(t, seen[code], code)
		seen[code] = true
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 2.5, ToFloat(2.5))
	assert.Equal(t, 3.0, ToFloat(3))
	assert.Equal(t, 4.0, ToFloat(int64(4)))
	assert.Equal(t, 1.5, ToFloat("1.5"))
	assert.Equal(t, 1.5, ToFloat(" 1.5 "))
	assert.Equal(t, 6.0, ToFloat(json.Number("6")))

	assert.Equal(t, 0.0, ToFloat(nil))
	assert.Equal(t, 0.0, ToFloat("abc"))
	assert.Equal(t, 0.0, ToFloat(""))
	assert.Equal(t, 0.0, ToFloat(true))
	assert.Equal(t, 0.0, ToFloat([]string{"1"}))
}
