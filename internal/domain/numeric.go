package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unitNoise lists the substrings stripped from numeric cells before parsing,
// in order. Broader patterns go first so "°c" is removed before the bare "°".
var unitNoise = []string{"°c", "℃", " c", "c ", " c ", "°", " celsius"}

var nonNumericRe = regexp.MustCompile(`[^0-9.\-]+`)

// CleanNumericCell extracts a float from a messy cell: unit suffixes and
// symbols are stripped, then locale separators are resolved. When both "," and
// "." appear, whichever occurs last is the decimal point; a lone comma is
// always a decimal point. Returns false when no numeric value can be
// recovered.
func CleanNumericCell(v Cell) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(t) {
			return 0, false
		}
		return t, true
	case string:
		return cleanNumericString(t)
	default:
		return 0, false
	}
}

func cleanNumericString(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, noise := range unitNoise {
		s = strings.ReplaceAll(s, noise, "")
	}
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// pt-BR: "1.234,56"
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// en-US: "1,234.56"
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	s = nonNumericRe.ReplaceAllString(s, "")
	switch s {
	case "", ".", "-", "-.", ".-":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
