package edifact

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// decimalComma matches a comma used as a decimal separator, i.e. one with
// digits on both sides. "58,28" becomes "58.28"; a bare comma is left alone.
var decimalComma = regexp.MustCompile(`(\d),(\d)`)

func normalizeDecimal(v string) string {
	return decimalComma.ReplaceAllString(v, "$1.$2")
}

// parseFloat decodes a decimal-comma or decimal-point numeral. It returns nil
// for empty or unparseable input; numeric fields are simply absent then.
func parseFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(normalizeDecimal(v), 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseInt truncates a lenient float parse to an int, defaulting to zero.
func parseInt(v string) int {
	if f := parseFloat(v); f != nil {
		return int(*f)
	}
	return 0
}

// dtmLayout maps a DTM format qualifier to its source layout. The source
// value must match the layout length exactly; EDIFACT senders occasionally
// tag an 8-character date as 203 and those pass through untouched.
type dtmLayout struct {
	src string
	out string
}

var dtmLayouts = map[string]dtmLayout{
	"203": {src: "200601021504", out: "2006-01-02 15:04"},
	"204": {src: "20060102150405", out: "2006-01-02 15:04:05"},
	"102": {src: "20060102", out: "2006-01-02"},
}

// reformatDTM renders a DTM value for display. The second return reports
// whether the value was actually recognized and reformatted; on an unknown
// format qualifier, a length mismatch, or a parse failure the raw value is
// returned unchanged.
func reformatDTM(value, format string) (string, bool) {
	layout, ok := dtmLayouts[format]
	if !ok || len(value) != len(layout.src) {
		return value, false
	}
	t, err := time.Parse(layout.src, value)
	if err != nil {
		return value, false
	}
	return t.Format(layout.out), true
}

// reformatInterchangeStamp renders the UNB "yymmdd:hhmm" composite. The raw
// composite is returned unchanged when it does not parse.
func reformatInterchangeStamp(composite string) (string, bool) {
	d, t, ok := strings.Cut(composite, SubSep)
	if !ok {
		return composite, false
	}
	parsed, err := time.Parse("0601021504", d+t)
	if err != nil {
		return composite, false
	}
	return parsed.Format("2006-01-02 15:04"), true
}
