// Package edifact decodes EDIFACT IFTMIN interchanges as produced by the
// MNG/Amazon trading-partner profile into typed records. The decoder is
// deliberately lenient: malformed or missing data degrades to absent fields,
// never to an error.
package edifact

import "strings"

// Fixed service characters for this trading-partner profile. The UNA
// service-string-advice segment is not consulted.
const (
	SegTerminator = "'"
	ElemSep       = "+"
	SubSep        = ":"
)

// Segment is one tagged, delimiter-terminated record. Elements are kept
// verbatim; sub-element separators inside an element are left for the
// individual decoders to interpret.
type Segment struct {
	Tag   string   `json:"tag"`
	Elems []string `json:"elems"`
}

// Elem returns element i, or "" when the segment is shorter than that.
func (s Segment) Elem(i int) string {
	if i < 0 || i >= len(s.Elems) {
		return ""
	}
	return s.Elems[i]
}

// Sub returns sub-element j of element i, or "" when absent.
func (s Segment) Sub(i, j int) string {
	parts := strings.Split(s.Elem(i), SubSep)
	if j < 0 || j >= len(parts) {
		return ""
	}
	return parts[j]
}

// FirstSub returns the part of element i before the first sub-element
// separator. For "id:qualifier" composites this is the id.
func (s Segment) FirstSub(i int) string {
	return s.Sub(i, 0)
}

// Composite rejoins all elements with the element separator, restoring the
// segment body as it appeared on the wire (minus the tag).
func (s Segment) Composite() string {
	return strings.Join(s.Elems, ElemSep)
}

// Tokenize splits raw interchange text into an ordered segment sequence.
// Line breaks are stripped first since interchanges are often re-wrapped in
// transit. Empty fragments are discarded, so empty input yields an empty
// sequence. Escape indicators are not honored and unknown tags are retained.
func Tokenize(text string) []Segment {
	raw := strings.TrimSpace(text)
	raw = strings.ReplaceAll(raw, "\n", "")
	raw = strings.ReplaceAll(raw, "\r", "")

	var segs []Segment
	for _, part := range strings.Split(raw, SegTerminator) {
		if part == "" {
			continue
		}
		chunks := strings.Split(part, ElemSep)
		segs = append(segs, Segment{
			Tag:   strings.TrimSpace(chunks[0]),
			Elems: chunks[1:],
		})
	}
	return segs
}
