package edifact

import "strings"

// Header carries interchange- and message-level identity. All fields are
// optional; repeated singleton segments overwrite earlier values.
type Header struct {
	Syntax              string `json:"syntax,omitempty"`
	Sender              string `json:"sender,omitempty"`
	Receiver            string `json:"receiver,omitempty"`
	InterchangeDatetime string `json:"interchange_datetime,omitempty"`
	InterchangeControl  string `json:"interchange_control,omitempty"`
	MessageRef          string `json:"message_ref,omitempty"`
	MessageType         string `json:"message_type,omitempty"`
	DocumentType        string `json:"document_type,omitempty"`
	ManifestNumber      string `json:"manifest_number,omitempty"`
	MessageFunction     string `json:"msg_function,omitempty"`
	MessageDatetime     string `json:"message_datetime,omitempty"`
	ShipmentDate        string `json:"shipment_date,omitempty"`
	Currency            string `json:"currency,omitempty"`
	Terms               string `json:"terms,omitempty"`
	Warehouse           string `json:"warehouse,omitempty"`
}

// headerDTMKeys maps message-level DTM qualifiers to header fields.
var headerDTMKeys = map[string]func(*Header, string){
	"9":  func(h *Header, v string) { h.MessageDatetime = v },
	"10": func(h *Header, v string) { h.ShipmentDate = v },
}

func decodeHeader(segs []Segment) Header {
	var h Header
	for _, s := range segs {
		switch s.Tag {
		case segUNB:
			// UNB+UNOC:3+sender:qual+receiver:qual+yymmdd:hhmm+control
			h.Syntax = s.Elem(0)
			h.Sender = s.FirstSub(1)
			h.Receiver = s.FirstSub(2)
			if dt := s.Elem(3); dt != "" {
				h.InterchangeDatetime, _ = reformatInterchangeStamp(dt)
			}
			h.InterchangeControl = s.Elem(4)

		case segUNH:
			h.MessageRef = s.Elem(0)
			h.MessageType = s.Elem(1)

		case segBGM:
			// BGM+87+<manifest number>+9
			h.DocumentType = s.Elem(0)
			h.ManifestNumber = s.Elem(1)
			h.MessageFunction = s.Elem(2)

		case segDTM:
			code := s.Sub(0, 0)
			value := s.Sub(0, 1)
			if value == "" {
				continue
			}
			if set, ok := headerDTMKeys[code]; ok {
				formatted, _ := reformatDTM(value, s.Sub(0, 2))
				set(&h, formatted)
			}

		case segCUX:
			// CUX+2:EUR
			if s.Elem(0) == "" {
				continue
			}
			if strings.Contains(s.Elem(0), SubSep) {
				h.Currency = s.Sub(0, 1)
			} else {
				h.Currency = s.Elem(0)
			}

		case segTOD:
			// TOD++PP
			if len(s.Elems) >= 2 {
				h.Terms = s.Elems[1]
			}

		case segLOC:
			// Warehouse is announced as LOC qualifier 198. The two branches
			// below are intentionally distinct: the literal "198+WTAM" body is
			// a profile constant, everything else 198-prefixed is re-split on
			// the element separator. Do not unify them.
			body := s.Composite()
			if body == "198+WTAM" {
				h.Warehouse = "WTAM"
			} else if strings.HasPrefix(body, "198") {
				tok := strings.Split(body, ElemSep)
				if len(tok) >= 2 {
					h.Warehouse = tok[1]
				}
			}
		}
	}
	return h
}
