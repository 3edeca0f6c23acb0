package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderCode_Format(t *testing.T) {
	now := time.Date(2025, 12, 9, 14, 30, 52, 0, time.UTC)

	for i := 0; i < 100; i++ {
		code := NewOrderCode(now)
		assert.Len(t, code, 8)
		assert.True(t, ValidOrderCode(code), "code %q should match the format", code)
		// day-of-year component is fixed for a fixed date
		assert.Equal(t, fmt.Sprintf("CN%03d", now.YearDay()), code[:5])
	}
}

func TestNewOrderCode_EarlyYearPadding(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	code := NewOrderCode(now)
	assert.Equal(t, "CN002", code[:5])
	assert.Len(t, code, 8)
}

func TestNormalizeOrderCode(t *testing.T) {
	assert.Equal(t, "CN343123", NormalizeOrderCode("cn343123"))
	assert.Equal(t, "CN343123", NormalizeOrderCode("  CN343123 "))
}

func TestValidOrderCode(t *testing.T) {
	assert.True(t, ValidOrderCode("CN343123"))
	assert.False(t, ValidOrderCode("CN34312"))   // too short
	assert.False(t, ValidOrderCode("XX343123"))  // wrong prefix
	assert.False(t, ValidOrderCode("CN3431234")) // too long
	assert.False(t, ValidOrderCode("CN34312a"))
}
