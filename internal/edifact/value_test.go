package edifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat_DecimalComma(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"58,28", 58.28},
		{"6,0", 6.0},
		{"58.28", 58.28},
		{".00", 0},
		{"1103", 1103},
	}
	for _, tt := range tests {
		got := parseFloat(tt.in)
		require.NotNil(t, got, tt.in)
		assert.Equal(t, tt.want, *got, tt.in)
	}
}

func TestParseFloat_Absent(t *testing.T) {
	assert.Nil(t, parseFloat(""))
	assert.Nil(t, parseFloat("EA"))
	assert.Nil(t, parseFloat("12,34,56,78 garbage"))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 6, parseInt("6"))
	assert.Equal(t, 5, parseInt("5,9"), "truncates, not rounds")
	assert.Equal(t, 0, parseInt(""))
	assert.Equal(t, 0, parseInt("n/a"))
}

func TestReformatDTM(t *testing.T) {
	got, ok := reformatDTM("202510130023", "203")
	assert.True(t, ok)
	assert.Equal(t, "2025-10-13 00:23", got)

	got, ok = reformatDTM("20251013110500", "204")
	assert.True(t, ok)
	assert.Equal(t, "2025-10-13 11:05:00", got)

	got, ok = reformatDTM("20251013", "102")
	assert.True(t, ok)
	assert.Equal(t, "2025-10-13", got)
}

func TestReformatDTM_Passthrough(t *testing.T) {
	// Length mismatch: an 8-character value tagged 203 is returned unchanged.
	got, ok := reformatDTM("20251013", "203")
	assert.False(t, ok)
	assert.Equal(t, "20251013", got)

	// Recognized format, malformed value (month 13).
	got, ok = reformatDTM("20251310", "102")
	assert.False(t, ok)
	assert.Equal(t, "20251310", got)

	// Unrecognized format qualifier.
	got, ok = reformatDTM("20251013", "999")
	assert.False(t, ok)
	assert.Equal(t, "20251013", got)
}

func TestReformatInterchangeStamp(t *testing.T) {
	got, ok := reformatInterchangeStamp("251013:0023")
	assert.True(t, ok)
	assert.Equal(t, "2025-10-13 00:23", got)

	got, ok = reformatInterchangeStamp("garbage")
	assert.False(t, ok)
	assert.Equal(t, "garbage", got)

	got, ok = reformatInterchangeStamp("2510xx:0023")
	assert.False(t, ok)
	assert.Equal(t, "2510xx:0023", got)
}
