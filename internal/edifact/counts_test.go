package edifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCounts(t *testing.T) {
	c := decodeCounts(Tokenize("CNT+2:6'CNT+7:6,0'CNT+8:2'CNT+12:63.37'"))

	assert.Equal(t, 6, c.LineCount)
	assert.Equal(t, 2, c.ShipmentCount)
	require.NotNil(t, c.TotalGrossWeightKG)
	assert.Equal(t, 6.0, *c.TotalGrossWeightKG)
	require.NotNil(t, c.TotalValue)
	assert.Equal(t, 63.37, *c.TotalValue)
}

func TestDecodeCounts_UnknownQualifierIgnored(t *testing.T) {
	c := decodeCounts(Tokenize("CNT+99:123'"))
	assert.Equal(t, Counts{}, c)
}

func TestDecodeCounts_NonNumeric(t *testing.T) {
	c := decodeCounts(Tokenize("CNT+2:n/a'CNT+7:n/a'CNT+12'"))

	assert.Equal(t, 0, c.LineCount, "int totals degrade to zero")
	assert.Nil(t, c.TotalGrossWeightKG, "float totals degrade to absent")
	assert.Nil(t, c.TotalValue)
}
