package edifact

import "strings"

// Shipment is one GID-anchored group of the interchange. Every field
// defaults to absent; repeats within one group overwrite.
type Shipment struct {
	Packages           *int                `json:"packages,omitempty"`
	Mode               string              `json:"mode,omitempty"`
	DestinationCity    string              `json:"destination_city,omitempty"`
	DestinationCountry string              `json:"destination_country,omitempty"`
	Route              string              `json:"route,omitempty"`
	Monetary           map[string]*float64 `json:"monetary,omitempty"`
	DeliveryTerms      string              `json:"delivery_terms,omitempty"`
	ExportReason       string              `json:"reason_for_export,omitempty"`
	Consignee          *Consignee          `json:"consignee,omitempty"`
	Weights            Weights             `json:"weights"`
	Dimensions         *Dimensions         `json:"dimensions_cm,omitempty"`
	ScheduledDelivery  string              `json:"scheduled_delivery,omitempty"`
	PickupTime         string              `json:"pickup_time,omitempty"`
	InvoiceDate        string              `json:"invoice_date,omitempty"`
	Tracking           string              `json:"tracking,omitempty"`
	OrderID            string              `json:"order_id,omitempty"`
	Phone              string              `json:"phone,omitempty"`
	Items              []Item              `json:"items,omitempty"`
}

// Consignee is the delivery address from the group's NAD+CN segment.
type Consignee struct {
	Name    string `json:"name,omitempty"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Weights carries the MEA gross (WT) and declared (WX) weights in kg.
type Weights struct {
	GrossKG    *float64 `json:"gross_kg,omitempty"`
	DeclaredKG *float64 `json:"declared_kg,omitempty"`
}

// Dimensions carries the DIM package dimensions in cm. It is only set when
// the segment carries the unit and all three measurement sub-elements; an
// individual measurement that fails to parse stays nil.
type Dimensions struct {
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// shipmentGroups partitions the sequence into contiguous slices
// [GID_i, GID_i+1), the last running to the end. No GID segments means no
// shipments, which is a valid decode.
func shipmentGroups(segs []Segment) [][]Segment {
	var starts []int
	for i, s := range segs {
		if s.Tag == segGID {
			starts = append(starts, i)
		}
	}

	var groups [][]Segment
	for j, start := range starts {
		end := len(segs)
		if j+1 < len(starts) {
			end = starts[j+1]
		}
		groups = append(groups, segs[start:end])
	}
	return groups
}

// groupDTMKeys maps shipment-scoped DTM qualifiers to their fields.
var groupDTMKeys = map[string]func(*Shipment, string){
	"17":  func(sh *Shipment, v string) { sh.ScheduledDelivery = v },
	"200": func(sh *Shipment, v string) { sh.PickupTime = v },
	"3":   func(sh *Shipment, v string) { sh.InvoiceDate = v },
}

func decodeShipment(group []Segment) Shipment {
	sh := Shipment{Monetary: make(map[string]*float64)}

	for _, s := range group {
		switch s.Tag {
		case segGID:
			// GID+<seq>+<qty>:PK
			if qty := s.Sub(1, 0); qty != "" && strings.Contains(s.Elem(1), SubSep) {
				if f := parseFloat(qty); f != nil {
					n := int(*f)
					sh.Packages = &n
				}
			}

		case segTMD:
			if len(s.Elems) > 0 {
				parts := strings.Split(s.Elem(0), SubSep)
				sh.Mode = parts[len(parts)-1]
			}

		case segLOC:
			// LOC+7+City / LOC+25+Country / LOC+193+Route. The value is the
			// segment body after the qualifier and its separator.
			body := s.Composite()
			switch {
			case strings.HasPrefix(body, "7"+ElemSep):
				sh.DestinationCity = strings.TrimPrefix(body, "7"+ElemSep)
			case strings.HasPrefix(body, "25"+ElemSep):
				sh.DestinationCountry = strings.TrimPrefix(body, "25"+ElemSep)
			case strings.HasPrefix(body, "193"+ElemSep):
				sh.Route = strings.TrimPrefix(body, "193"+ElemSep)
			}

		case segMOA:
			// MOA+<qualifier>:<amount>
			if qual := s.Sub(0, 0); qual != "" {
				sh.Monetary[qual] = parseFloat(s.Sub(0, 1))
			}

		case segFTX:
			switch s.Elem(0) {
			case "AAR":
				sh.DeliveryTerms = strings.TrimSpace(s.Elem(2))
			case "AAH":
				sh.ExportReason = strings.TrimSpace(s.Elem(2))
			}

		case segNAD:
			if s.Elem(0) != "CN" {
				continue
			}
			name := strings.TrimSpace(s.Elem(2))
			if second := strings.TrimSpace(s.Elem(3)); second != "" {
				name += " " + second
			}
			sh.Consignee = &Consignee{
				Name:    strings.Trim(name, "+ "),
				Street:  strings.ReplaceAll(s.Elem(4), SubSep, " "),
				City:    s.Elem(5),
				State:   s.Elem(6),
				Zip:     s.Elem(7),
				Country: s.Elem(8),
			}

		case segMEA:
			// MEA+WT+G+KG:.00, the amount sits after the final sub-element
			// separator of the last composite.
			last := s.Elem(len(s.Elems) - 1)
			idx := strings.LastIndex(last, SubSep)
			if idx < 0 {
				continue
			}
			switch s.Elem(0) {
			case "WT":
				sh.Weights.GrossKG = parseFloat(last[idx+1:])
			case "WX":
				sh.Weights.DeclaredKG = parseFloat(last[idx+1:])
			}

		case segDIM:
			// DIM+2+CMT:10.0:50.0:12.0, unit plus all three measurements
			// required, otherwise dimensions stay unset.
			parts := strings.Split(s.Elem(1), SubSep)
			if len(parts) < 4 {
				continue
			}
			sh.Dimensions = &Dimensions{
				Length: parseFloat(parts[1]),
				Width:  parseFloat(parts[2]),
				Height: parseFloat(parts[3]),
			}

		case segDTM:
			code := s.Sub(0, 0)
			value := s.Sub(0, 1)
			if value == "" {
				continue
			}
			if set, ok := groupDTMKeys[code]; ok {
				formatted, _ := reformatDTM(value, s.Sub(0, 2))
				set(&sh, formatted)
			}

		case segRFF:
			if v, ok := refValue(s, refTracking); ok {
				sh.Tracking = v
			} else if v, ok := refValue(s, refOrder); ok {
				sh.OrderID = v
			} else if v, ok := refValue(s, refPhone); ok {
				sh.Phone = v
			}
		}
	}
	return sh
}
