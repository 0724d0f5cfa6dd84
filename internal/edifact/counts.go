package edifact

// Counts holds the CNT aggregate totals for the whole interchange.
// Float totals are nil when the segment is missing or non-numeric; int
// totals default to zero.
type Counts struct {
	LineCount          int      `json:"line_count,omitempty"`
	ShipmentCount      int      `json:"shipment_count,omitempty"`
	TotalGrossWeightKG *float64 `json:"total_gross_weight_kg,omitempty"`
	TotalValue         *float64 `json:"total_value,omitempty"`
}

func decodeCounts(segs []Segment) Counts {
	var c Counts
	for _, s := range segs {
		if s.Tag != segCNT || len(s.Elems) == 0 {
			continue
		}
		// CNT+<qualifier>:<value>
		switch s.Sub(0, 0) {
		case "2":
			c.LineCount = parseInt(s.Sub(0, 1))
		case "7":
			c.TotalGrossWeightKG = parseFloat(s.Sub(0, 1))
		case "8":
			c.ShipmentCount = parseInt(s.Sub(0, 1))
		case "12":
			c.TotalValue = parseFloat(s.Sub(0, 1))
		}
	}
	return c
}
