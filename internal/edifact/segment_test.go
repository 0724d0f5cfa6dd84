package edifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	segs := Tokenize("BGM+87+1027214650005003+9'DTM+9:202510130023:203'")

	require.Len(t, segs, 2)
	assert.Equal(t, "BGM", segs[0].Tag)
	assert.Equal(t, []string{"87", "1027214650005003", "9"}, segs[0].Elems)
	assert.Equal(t, "DTM", segs[1].Tag)
	// Sub-element separators stay unsplit for the decoders.
	assert.Equal(t, []string{"9:202510130023:203"}, segs[1].Elems)
}

func TestTokenize_StripsLineBreaks(t *testing.T) {
	segs := Tokenize("BGM+87+10272'\r\nCNT+2:6'\nTOD++PP'")

	require.Len(t, segs, 3)
	assert.Equal(t, "BGM", segs[0].Tag)
	assert.Equal(t, "CNT", segs[1].Tag)
	assert.Equal(t, "TOD", segs[2].Tag)
}

func TestTokenize_SplitMidSegment(t *testing.T) {
	// Interchanges re-wrapped in transit can break inside a segment.
	segs := Tokenize("CNT+2:6'TOD+\n+PP'")

	require.Len(t, segs, 2)
	assert.Equal(t, []string{"", "PP"}, segs[1].Elems)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("\n\r\n"))
}

func TestTokenize_DiscardsEmptyTrailingFragment(t *testing.T) {
	segs := Tokenize("UNZ+1+2243369'")
	require.Len(t, segs, 1)
	assert.Equal(t, "UNZ", segs[0].Tag)
}

func TestTokenize_RetainsUnknownTags(t *testing.T) {
	segs := Tokenize("TSR+1+5+4'XYZ+foo'")
	require.Len(t, segs, 2)
	assert.Equal(t, "XYZ", segs[1].Tag)
}

func TestSegmentAccessors(t *testing.T) {
	s := Segment{Tag: "NAD", Elems: []string{"IV", "5450534005821::9", "", "AMAZON EU SARL:SUCCURSALE FRANCAISE"}}

	assert.Equal(t, "IV", s.Elem(0))
	assert.Equal(t, "", s.Elem(9), "reads beyond the last element are absent, not a panic")
	assert.Equal(t, "", s.Elem(-1))
	assert.Equal(t, "5450534005821", s.FirstSub(1))
	assert.Equal(t, "SUCCURSALE FRANCAISE", s.Sub(3, 1))
	assert.Equal(t, "", s.Sub(3, 7))
	assert.Equal(t, "IV+5450534005821::9++AMAZON EU SARL:SUCCURSALE FRANCAISE", s.Composite())
}
