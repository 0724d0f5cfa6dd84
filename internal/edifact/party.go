package edifact

import "strings"

// Synthetic party keys: contact details (CTA/COM) and the VAT reference
// (RFF+VA) have no NAD of their own and aggregate under fixed keys.
const (
	PartyContact = "CTA"
	PartyInvoice = "IV"
)

// Party is one named party from a NAD segment, keyed by its role qualifier.
// The fields follow the fixed composite positions of the profile and are
// absent when the segment is shorter.
type Party struct {
	Qualifier  string            `json:"qualifier,omitempty"`
	PartyID    string            `json:"party_id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Address    string            `json:"addr,omitempty"`
	City       string            `json:"city,omitempty"`
	State      string            `json:"state,omitempty"`
	PostalCode string            `json:"zip,omitempty"`
	Country    string            `json:"country,omitempty"`
	Role       string            `json:"role,omitempty"`
	Phone      string            `json:"tel,omitempty"`
	Refs       map[string]string `json:"refs,omitempty"`
}

func decodeParties(segs []Segment) map[string]*Party {
	parties := make(map[string]*Party)

	at := func(key string) *Party {
		p, ok := parties[key]
		if !ok {
			p = &Party{}
			parties[key] = p
		}
		return p
	}

	for _, s := range segs {
		switch s.Tag {
		case segNAD:
			qual := s.Elem(0)
			if qual == "" {
				continue
			}
			// Repeats of the same qualifier overwrite: last wins.
			parties[qual] = &Party{
				Qualifier:  qual,
				PartyID:    s.FirstSub(1),
				Name:       strings.ReplaceAll(s.Elem(3), SubSep, " "),
				Address:    strings.ReplaceAll(s.Elem(4), SubSep, " "),
				City:       s.Elem(5),
				State:      s.Elem(6),
				PostalCode: s.Elem(7),
				Country:    s.Elem(8),
			}

		case segCTA:
			if s.Elem(0) != "" {
				at(PartyContact).Role = s.Elem(0)
			}

		case segCOM:
			// COM pairs with whichever CTA was last seen; the profile gives
			// no structural guarantee, so none is enforced.
			if s.Elem(0) != "" {
				at(PartyContact).Phone = s.FirstSub(0)
			}

		case segRFF:
			if v, ok := refValue(s, refVAT); ok {
				p := at(PartyInvoice)
				if p.Refs == nil {
					p.Refs = make(map[string]string)
				}
				p.Refs["VAT"] = v
			}
		}
	}
	return parties
}
