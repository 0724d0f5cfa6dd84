// Package sample embeds a reference IFTMIN interchange so the API and the
// offline decoder can be exercised without live trading-partner data.
package sample

import _ "embed"

//go:embed reference.edi
var reference string

// Reference returns the raw reference interchange: one manifest with two
// shipment groups carrying five and one item respectively.
func Reference() string {
	return reference
}

// ReferenceName is the source name reported for the embedded interchange.
const ReferenceName = "reference.edi"
