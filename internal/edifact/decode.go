package edifact

import "strings"

// Segment tags understood by the decoders. Anything else is tokenized but
// ignored.
const (
	segUNB = "UNB"
	segUNH = "UNH"
	segBGM = "BGM"
	segDTM = "DTM"
	segCUX = "CUX"
	segTOD = "TOD"
	segLOC = "LOC"
	segCNT = "CNT"
	segNAD = "NAD"
	segCTA = "CTA"
	segCOM = "COM"
	segRFF = "RFF"
	segGID = "GID"
	segTMD = "TMD"
	segMOA = "MOA"
	segFTX = "FTX"
	segMEA = "MEA"
	segDIM = "DIM"
	segPCI = "PCI"
)

// Reference qualifiers carried by RFF segments.
const (
	refVAT        = "VA"
	refTracking   = "CR"
	refOrder      = "TB"
	refPhone      = "TE"
	refProductRef = "VP"
)

// Interchange is one fully decoded IFTMIN message. It is built once by
// Decode and read-only afterwards. Every field of every record is optional;
// callers must tolerate sparse results.
type Interchange struct {
	Segments  []Segment         `json:"segments"`
	Header    Header            `json:"header"`
	Counts    Counts            `json:"counts"`
	Parties   map[string]*Party `json:"parties"`
	Shipments []Shipment        `json:"shipments"`
}

// refValue returns the value of an RFF segment when its leading sub-element
// carries the given qualifier, e.g. refValue(s, "CR") on "RFF+CR:ZR226361"
// yields "ZR226361".
func refValue(s Segment, qualifier string) (string, bool) {
	prefix := qualifier + SubSep
	if !strings.HasPrefix(s.Elem(0), prefix) {
		return "", false
	}
	return strings.TrimPrefix(s.Elem(0), prefix), true
}

// Decode tokenizes raw interchange text and runs every extraction pass.
// It never fails: structurally degenerate input produces a valid but sparse
// Interchange.
func Decode(text string) *Interchange {
	segs := Tokenize(text)

	ic := &Interchange{
		Segments: segs,
		Header:   decodeHeader(segs),
		Counts:   decodeCounts(segs),
		Parties:  decodeParties(segs),
	}
	for _, group := range shipmentGroups(segs) {
		sh := decodeShipment(group)
		sh.Items = extractItems(group)
		ic.Shipments = append(ic.Shipments, sh)
	}
	return ic
}
