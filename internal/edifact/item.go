package edifact

import "strings"

// Item is one commercial line extracted from a PCI segment paired with its
// trailing RFF+VP product reference.
type Item struct {
	UOM        string   `json:"uom,omitempty"`
	Qty        *float64 `json:"qty,omitempty"`
	UnitPrice  *float64 `json:"unit_price,omitempty"`
	ProductRef string   `json:"product_ref,omitempty"`
}

// extractItems pairs each PCI item line with the next RFF+VP reference in
// the group. The scan keeps a single pending slot: a PCI opens (or replaces)
// it, an RFF+VP closes and emits it.
//
//   - a PCI with no RFF+VP before the next PCI or the group end is dropped,
//     not emitted;
//   - an RFF+VP with no pending PCI emits an item carrying only the
//     reference.
func extractItems(group []Segment) []Item {
	var items []Item
	var pending *Item

	for _, s := range group {
		switch s.Tag {
		case segPCI:
			if len(s.Elems) == 0 {
				continue
			}
			// PCI+ZZZ+Unknown:0000.00.0000:TR:1:EA:528,00:528,00
			// The element separator may have split the composite, so rejoin
			// with the sub-element separator and re-split; the commercial
			// fields sit at fixed positions from the end.
			fields := strings.Split(strings.Join(s.Elems, SubSep), SubSep)
			item := &Item{}
			if len(fields) >= 4 {
				item.Qty = parseFloat(fields[len(fields)-4])
			}
			if len(fields) >= 3 {
				item.UOM = fields[len(fields)-3]
			}
			if len(fields) >= 2 {
				item.UnitPrice = parseFloat(fields[len(fields)-2])
			}
			pending = item

		case segRFF:
			ref, ok := refValue(s, refProductRef)
			if !ok {
				continue
			}
			if pending == nil {
				pending = &Item{}
			}
			pending.ProductRef = ref
			items = append(items, *pending)
			pending = nil
		}
	}
	return items
}
