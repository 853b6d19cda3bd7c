package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyRoundTrip(t *testing.T) {
	day := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	key := FormatDateKey(day)
	assert.Equal(t, "15_06_2025", key)

	parsed, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(day))
}

func TestValidDateKey(t *testing.T) {
	assert.True(t, ValidDateKey("15_06_2025"))
	assert.True(t, ValidDateKey("01_01_2026"))

	assert.False(t, ValidDateKey("2025-06-15"))
	assert.False(t, ValidDateKey("31_02_2025")) // February 31st
	assert.False(t, ValidDateKey("15/06/2025"))
	assert.False(t, ValidDateKey(""))
}

func TestValidSlotTime(t *testing.T) {
	assert.True(t, ValidSlotTime("10:00 AM"))
	assert.True(t, ValidSlotTime("1:30 PM"))

	assert.False(t, ValidSlotTime("25:00"))
	assert.False(t, ValidSlotTime("10:00"))
	assert.False(t, ValidSlotTime(""))
}

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateVerificationCode()
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q is not numeric", code)
		}
		seen[code] = true
	}
	// Fifty draws of a six-digit code should not all collide.
	assert.Greater(t, len(seen), 1)
}
